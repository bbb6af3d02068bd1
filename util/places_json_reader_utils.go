package util

import (
	"fmt"
	"os"

	"food-picker/models"

	"github.com/goccy/go-json"
)

// ReadPlacesSearchResponseFromJSON loads a PlacesSearchResponse from JSON on disk.
func ReadPlacesSearchResponseFromJSON(filePath string) (*models.PlacesSearchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.PlacesSearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlacesSearchResponse: %w", err)
	}
	return &resp, nil
}
