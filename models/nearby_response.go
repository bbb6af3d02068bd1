package models

// NearbyResponse is the payload of GET /api/nearby.
type NearbyResponse struct {
	Pick        *string      `json:"pick" yaml:"pick"`
	Description *Description `json:"description,omitempty" yaml:"description,omitempty"`
	Restaurants []string     `json:"restaurants" yaml:"restaurants"`
}

// Description holds the display fields of the picked venue.
type Description struct {
	Categories    string  `json:"categories" yaml:"categories"`
	Address       string  `json:"address" yaml:"address"`
	Website       string  `json:"website" yaml:"website"`
	DistanceMiles float64 `json:"distance_miles" yaml:"distance_miles"`
}
