// Package respond writes JSON bodies and maps application errors to HTTP statuses.
package respond

import (
	"errors"
	"net/http"

	"food-picker/apperrors"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ErrorBody struct {
	Error          string `json:"error"`
	UpstreamStatus *int   `json:"upstream_status,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error classifies err and writes the matching status and body. Unclassified
// errors are logged and reported as a generic 500.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	status, body := classify(err)
	if status == http.StatusInternalServerError && log != nil {
		log.Error("request failed", zap.Error(err))
	}
	JSON(w, status, body)
}

func classify(err error) (int, ErrorBody) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ErrorBody{Error: ve.Error()}
	}

	var ue *apperrors.UpstreamError
	if errors.As(err, &ue) {
		if errors.Is(ue, apperrors.ErrCircuitOpen) {
			return http.StatusServiceUnavailable, ErrorBody{Error: apperrors.ErrCircuitOpen.Error()}
		}
		body := ErrorBody{Error: "places API request failed"}
		if ue.StatusCode != 0 {
			code := ue.StatusCode
			body.UpstreamStatus = &code
		}
		return http.StatusBadGateway, body
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorBody{Error: apperrors.ErrInvalidCredentials.Error()}
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, ErrorBody{Error: apperrors.ErrUnauthorized.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, ErrorBody{Error: apperrors.ErrNotFound.Error()}
	case errors.Is(err, apperrors.ErrRateLimited):
		return http.StatusTooManyRequests, ErrorBody{Error: apperrors.ErrRateLimited.Error()}
	case errors.Is(err, apperrors.ErrNotConfigured):
		return http.StatusServiceUnavailable, ErrorBody{Error: apperrors.ErrNotConfigured.Error()}
	}
	return http.StatusInternalServerError, ErrorBody{Error: "internal server error"}
}
