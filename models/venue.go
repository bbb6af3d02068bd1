package models

// Venue is a place record as returned by the Foursquare places search.
type Venue struct {
	FsqPlaceID string     `json:"fsq_place_id,omitempty"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories,omitempty"`
	Location   *Location  `json:"location,omitempty"`
	Website    string     `json:"website,omitempty"`
	// Distance from the search point in meters; nil when the API omits it.
	Distance *float64 `json:"distance,omitempty"`
}

type Category struct {
	FsqCategoryID string `json:"fsq_category_id,omitempty"`
	Name          string `json:"name,omitempty"`
	ShortName     string `json:"short_name"`
	Icon          Icon   `json:"icon"`
}

type Icon struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix,omitempty"`
}

type Location struct {
	FormattedAddress string `json:"formatted_address,omitempty"`
	Locality         string `json:"locality,omitempty"`
	Country          string `json:"country,omitempty"`
}

// FormattedAddress returns the venue address or "" when absent.
func (v Venue) FormattedAddress() string {
	if v.Location == nil {
		return ""
	}
	return v.Location.FormattedAddress
}
