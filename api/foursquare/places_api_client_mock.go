package foursquare

import (
	"context"
	"fmt"

	"food-picker/config"
	"food-picker/models"
	"food-picker/util"
)

// PlacesAPIClientMock serves search results from a JSON fixture, so the
// service can run without an API key.
type PlacesAPIClientMock struct {
	fixturePath string
}

// NewPlacesAPIClientMock creates a mock reading the bundled fixture.
func NewPlacesAPIClientMock() *PlacesAPIClientMock {
	return &PlacesAPIClientMock{
		fixturePath: config.GetResourcePath(config.PLACES_SEARCH_RESPONSE_RESOURCE),
	}
}

// NewPlacesAPIClientMockFromFile creates a mock reading the given fixture.
func NewPlacesAPIClientMockFromFile(path string) *PlacesAPIClientMock {
	return &PlacesAPIClientMock{fixturePath: path}
}

// SearchNearby returns the fixture results regardless of the coordinates.
func (c *PlacesAPIClientMock) SearchNearby(ctx context.Context, lat, lng float64, radius int) ([]models.Venue, error) {
	response, err := util.ReadPlacesSearchResponseFromJSON(c.fixturePath)
	if err != nil {
		return nil, fmt.Errorf("could not read places search fixture: %w", err)
	}
	if response.Results == nil {
		return []models.Venue{}, nil
	}
	return response.Results, nil
}
