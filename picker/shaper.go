package picker

import (
	"math"
	"strings"

	"food-picker/models"
)

const (
	categorySeparator = " · "
	metersPerMile     = 1609.34
)

// Shape builds the API payload for a selection.
func Shape(result SelectionResult) models.NearbyResponse {
	if result.Pick == nil {
		return models.NearbyResponse{Restaurants: []string{}}
	}

	pick := result.Pick
	categories := make([]string, 0, len(pick.Categories))
	for _, c := range pick.Categories {
		categories = append(categories, c.ShortName)
	}

	restaurants := result.CandidateNames
	if restaurants == nil {
		restaurants = []string{}
	}

	name := pick.Name
	return models.NearbyResponse{
		Pick: &name,
		Description: &models.Description{
			Categories:    strings.Join(categories, categorySeparator),
			Address:       pick.FormattedAddress(),
			Website:       pick.Website,
			DistanceMiles: MetersToMiles(pick.Distance),
		},
		Restaurants: restaurants,
	}
}

// MetersToMiles converts and rounds to one decimal place; nil yields 0.
func MetersToMiles(meters *float64) float64 {
	if meters == nil {
		return 0
	}
	return math.Round(*meters/metersPerMile*10) / 10
}
