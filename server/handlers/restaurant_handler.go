package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"food-picker/apperrors"
	"food-picker/logger"
	"food-picker/models"
	"food-picker/server/respond"

	"go.uber.org/zap"
)

const (
	LAT_QUERY_ARG     = "lat"
	LNG_QUERY_ARG     = "lng"
	RADIUS_QUERY_ARG  = "radius"
	EXCLUDE_QUERY_ARG = "exclude"
	TYPES_QUERY_ARG   = "types"
)

// NearbyFinder runs a nearby restaurant lookup.
type NearbyFinder interface {
	Nearby(ctx context.Context, params models.NearbyParams) (*models.NearbyResponse, error)
}

// FoodSuggester returns a random dish name.
type FoodSuggester interface {
	RandomFood() string
}

type RandomFoodResponse struct {
	Food string `json:"food"`
}

type RestaurantHandler struct {
	finder NearbyFinder
	foods  FoodSuggester
	log    *zap.Logger
}

func NewRestaurantHandler(finder NearbyFinder, foods FoodSuggester, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		finder: finder,
		foods:  foods,
		log:    logger.Component(log, "restaurant_handler"),
	}
}

// GetNearby handles GET /api/nearby?lat=&lng=[&radius=&exclude=&types=]
func (h *RestaurantHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	params, err := parseNearbyArgs(r.URL.Query())
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	resp, err := h.finder.Nearby(r.Context(), params)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, resp)
}

// GetRandomFood handles GET /api/random
func (h *RestaurantHandler) GetRandomFood(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, RandomFoodResponse{Food: h.foods.RandomFood()})
}

func parseNearbyArgs(vals url.Values) (models.NearbyParams, error) {
	var params models.NearbyParams
	var err error

	if params.Lat, err = parseArgFloat64(vals, LAT_QUERY_ARG); err != nil {
		return params, err
	}
	if params.Lng, err = parseArgFloat64(vals, LNG_QUERY_ARG); err != nil {
		return params, err
	}
	if s := vals.Get(RADIUS_QUERY_ARG); s != "" {
		radius, err := strconv.Atoi(s)
		if err != nil {
			return params, apperrors.NewValidationError(RADIUS_QUERY_ARG, "must be an integer")
		}
		if radius <= 0 {
			return params, apperrors.NewValidationError(RADIUS_QUERY_ARG, "must be positive")
		}
		params.Radius = radius
	}
	params.Exclude = vals.Get(EXCLUDE_QUERY_ARG)
	params.Types = vals.Get(TYPES_QUERY_ARG)
	return params, nil
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	if s == "" {
		return 0, apperrors.NewValidationError(name, "is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(name, "must be a number")
	}
	return v, nil
}
