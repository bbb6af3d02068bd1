package foursquare

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"food-picker/api"
	"food-picker/apperrors"
	"food-picker/config"
	"food-picker/models"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const searchEndpoint = "/places/search"

// PlacesAPIClient embeds the common HTTPClient
type PlacesAPIClient struct {
	*api.HTTPClient
	apiKey  string
	breaker *gobreaker.CircuitBreaker[[]models.Venue]
	log     *zap.Logger
}

// NewPlacesAPIClient creates a client that trips after five consecutive
// upstream failures and probes again after 30 seconds.
func NewPlacesAPIClient(httpClient *api.HTTPClient, apiKey string, log *zap.Logger) *PlacesAPIClient {
	if log == nil {
		log = zap.NewNop()
	}
	c := &PlacesAPIClient{
		HTTPClient: httpClient,
		apiKey:     apiKey,
		log:        log,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]models.Venue](gobreaker.Settings{
		Name:        "foursquare-places",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// the caller's own cancellation says nothing about upstream health
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return c
}

// SearchNearby issues a single places search. There is no retry: failures are
// returned as *apperrors.UpstreamError.
func (c *PlacesAPIClient) SearchNearby(ctx context.Context, lat, lng float64, radius int) ([]models.Venue, error) {
	venues, err := c.breaker.Execute(func() ([]models.Venue, error) {
		return c.search(ctx, lat, lng, radius)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, apperrors.NewUpstreamError(0, apperrors.ErrCircuitOpen)
	}
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *PlacesAPIClient) search(ctx context.Context, lat, lng float64, radius int) ([]models.Venue, error) {
	var response models.PlacesSearchResponse
	err := c.Request(ctx, http.MethodGet, searchEndpoint, SearchQuery(lat, lng, radius), c.headers(), nil, &response)
	if err != nil {
		c.log.Warn("places search failed", zap.Error(err))
		return nil, err
	}
	if response.Results == nil {
		return []models.Venue{}, nil
	}
	return response.Results, nil
}

func (c *PlacesAPIClient) headers() map[string]string {
	return map[string]string{
		"Authorization":        "Bearer " + c.apiKey,
		"X-Places-Api-Version": config.FOURSQUARE_API_VERSION,
		"Accept":               "application/json",
	}
}

// SearchQuery builds the fixed query string of a restaurant search.
func SearchQuery(lat, lng float64, radius int) url.Values {
	if radius <= 0 {
		radius = config.DEFAULT_SEARCH_RADIUS_METERS
	}
	return url.Values{
		"ll":         {fmt.Sprintf("%s,%s", formatCoord(lat), formatCoord(lng))},
		"radius":     {strconv.Itoa(radius)},
		"categories": {config.FOURSQUARE_RESTAURANT_CATEGORY},
		"limit":      {strconv.Itoa(config.FOURSQUARE_SEARCH_LIMIT)},
		"fields":     {config.FOURSQUARE_SEARCH_FIELDS},
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
