package foursquare

import (
	"context"

	"food-picker/models"
)

// PlacesAPI defines the interface for interacting with the Foursquare Places API
type PlacesAPI interface {
	// SearchNearby returns the restaurants within radius meters of lat,lng.
	SearchNearby(ctx context.Context, lat, lng float64, radius int) ([]models.Venue, error)
}
