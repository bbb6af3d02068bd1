package foursquare

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"food-picker/api"
	"food-picker/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSearchNearby(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/places/search", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "2025-06-17", r.Header.Get("X-Places-Api-Version"))

		q := r.URL.Query()
		checks := map[string]string{
			"ll":         "40.7128,-74.006",
			"radius":     "800",
			"categories": "13065",
			"limit":      "50",
			"fields":     "name,categories,location,website,distance",
		}
		for key, want := range checks {
			assert.Equal(t, want, q.Get(key), "query[%q]", key)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"name":"A","categories":[{"short_name":"Pizza","icon":{"prefix":"/food/"}}],"distance":1609.34}]}`))
	}))
	defer srv.Close()

	client := NewPlacesAPIClient(api.NewHTTPClient(srv.URL, time.Second), "secret", zaptest.NewLogger(t))

	venues, err := client.SearchNearby(context.Background(), 40.7128, -74.006, 800)
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "A", venues[0].Name)
	assert.Equal(t, "/food/", venues[0].Categories[0].Icon.Prefix)
	assert.Equal(t, 1609.34, *venues[0].Distance)
}

func TestSearchNearby_MissingResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewPlacesAPIClient(api.NewHTTPClient(srv.URL, time.Second), "secret", nil)

	venues, err := client.SearchNearby(context.Background(), 1, 2, 0)
	require.NoError(t, err)
	assert.NotNil(t, venues)
	assert.Empty(t, venues)
}

func TestSearchNearby_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid key"}`))
	}))
	defer srv.Close()

	client := NewPlacesAPIClient(api.NewHTTPClient(srv.URL, time.Second), "bad", nil)

	_, err := client.SearchNearby(context.Background(), 1, 2, 1500)
	var ue *apperrors.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusUnauthorized, ue.StatusCode)
}

func TestSearchNearby_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewPlacesAPIClient(api.NewHTTPClient(srv.URL, time.Second), "key", nil)

	for i := 0; i < 5; i++ {
		_, err := client.SearchNearby(context.Background(), 1, 2, 1500)
		require.Error(t, err)
	}
	_, err := client.SearchNearby(context.Background(), 1, 2, 1500)

	assert.ErrorIs(t, err, apperrors.ErrCircuitOpen)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Equal(t, int32(5), calls.Load(), "open breaker must not reach upstream")
}

func TestSearchQuery_DefaultRadius(t *testing.T) {
	q := SearchQuery(1.5, -2.25, 0)
	assert.Equal(t, "1500", q.Get("radius"))
	assert.Equal(t, "1.5,-2.25", q.Get("ll"))
}
