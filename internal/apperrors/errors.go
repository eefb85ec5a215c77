// Package apperrors defines the error taxonomy shared by the services and the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error codes returned to API callers
const (
	CodeValidation     = "VALIDATION_FAILED"
	CodeGeneration     = "GENERATION_FAILED"
	CodeUpstream       = "UPSTREAM_UNAVAILABLE"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL_ERROR"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInvalidRequest = "INVALID_REQUEST"
)

// ValidationError reports malformed or out-of-range input, keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a validation error for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ReconciliationError means model output could not be coerced into the expected
// schema, including after the correction round trip.
type ReconciliationError struct {
	ExpectedKey string
	State       string
	RawText     string
	Cause       error
}

func (e *ReconciliationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("reconcile %q failed in state %s: %v", e.ExpectedKey, e.State, e.Cause)
	}
	return fmt.Sprintf("reconcile %q failed in state %s", e.ExpectedKey, e.State)
}

func (e *ReconciliationError) Unwrap() error { return e.Cause }

// UpstreamError means the model provider or the recipe source failed or timed out.
// RawText carries the last model output received before the failure, if any.
type UpstreamError struct {
	Service string
	RawText string
	Cause   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Cause)
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

// NotFoundError means the requested resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// StatusCode maps an error to the HTTP status it should be reported with.
func StatusCode(err error) int {
	var (
		validationErr *ValidationError
		reconcileErr  *ReconciliationError
		upstreamErr   *UpstreamError
		notFoundErr   *NotFoundError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &reconcileErr):
		return http.StatusBadGateway
	case errors.As(err, &upstreamErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Code maps an error to its API error code.
func Code(err error) string {
	switch StatusCode(err) {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusBadGateway:
		return CodeGeneration
	case http.StatusServiceUnavailable:
		return CodeUpstream
	default:
		return CodeInternal
	}
}
