package models

// PlacesSearchResponse is the body of GET /places/search.
type PlacesSearchResponse struct {
	Results []Venue `json:"results"`
}
