package models

// NearbyParams are the inputs of a nearby lookup.
type NearbyParams struct {
	Lat     float64 `validate:"gte=-90,lte=90"`
	Lng     float64 `validate:"gte=-180,lte=180"`
	Radius  int     `validate:"gte=1,lte=100000"`
	Exclude string
	Types   string
}
