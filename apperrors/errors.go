// Package apperrors defines the error taxonomy shared by the service and HTTP layers.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrRateLimited        = errors.New("too many requests")
	ErrNotConfigured      = errors.New("storage is not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrCircuitOpen is wrapped in an UpstreamError while calls to the places API
// are short-circuited after repeated failures.
var ErrCircuitOpen = errors.New("places API temporarily unavailable")

// UpstreamError reports a failed call to the places API. StatusCode is 0 for
// transport failures.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %v", e.Err)
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(statusCode int, err error) *UpstreamError {
	return &UpstreamError{StatusCode: statusCode, Err: err}
}

// ValidationError reports caller input that cannot be accepted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsUpstream reports whether err is (or wraps) an UpstreamError.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
