package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"food-picker/api/foursquare"
	"food-picker/apperrors"
	"food-picker/config"
	"food-picker/logger"
	"food-picker/metrics"
	"food-picker/models"
	"food-picker/picker"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// RestaurantService runs the nearby lookup: fetch, classify, select, shape.
type RestaurantService struct {
	placesAPI foursquare.PlacesAPI
	validate  *validator.Validate
	intn      picker.IntN
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func NewRestaurantService(placesAPI foursquare.PlacesAPI, m *metrics.Metrics, log *zap.Logger) *RestaurantService {
	return &RestaurantService{
		placesAPI: placesAPI,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		intn:      rand.IntN,
		metrics:   m,
		log:       logger.Component(log, "restaurant_service"),
	}
}

// SetRandom replaces the selection randomness source.
func (s *RestaurantService) SetRandom(intn picker.IntN) {
	s.intn = intn
}

// Nearby returns a random pick among food venues around params.Lat/Lng.
// A zero radius means the default search radius.
func (s *RestaurantService) Nearby(ctx context.Context, params models.NearbyParams) (*models.NearbyResponse, error) {
	if params.Radius == 0 {
		params.Radius = config.DEFAULT_SEARCH_RADIUS_METERS
	}
	if err := s.validateParams(params); err != nil {
		s.metrics.NearbyLookups.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	venues, err := s.placesAPI.SearchNearby(ctx, params.Lat, params.Lng, params.Radius)
	if err != nil {
		s.metrics.NearbyLookups.WithLabelValues(metrics.OutcomeUpstream).Inc()
		var ue *apperrors.UpstreamError
		if errors.As(err, &ue) {
			s.metrics.UpstreamErrors.WithLabelValues(strconv.Itoa(ue.StatusCode)).Inc()
		}
		s.log.Warn("places search failed", zap.Float64("lat", params.Lat), zap.Float64("lng", params.Lng), zap.Error(err))
		return nil, fmt.Errorf("nearby search: %w", err)
	}

	classifier := picker.NewClassifier(params.Types)
	filtered := picker.Filter(venues, classifier)
	result := picker.Select(filtered, params.Exclude, s.intn)
	response := picker.Shape(result)

	outcome := metrics.OutcomePicked
	if result.Pick == nil {
		outcome = metrics.OutcomeEmpty
	}
	s.metrics.NearbyLookups.WithLabelValues(outcome).Inc()
	s.log.Debug("nearby lookup",
		zap.String("mode", classifier.Mode()),
		zap.Int("raw", len(venues)),
		zap.Int("filtered", len(filtered)),
		zap.String("outcome", outcome),
	)
	return &response, nil
}

func (s *RestaurantService) validateParams(params models.NearbyParams) error {
	err := s.validate.Struct(params)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), describeRule(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
