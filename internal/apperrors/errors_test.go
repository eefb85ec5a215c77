package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"validation", NewValidationError("weight", "must be at least 50"), http.StatusBadRequest, CodeValidation},
		{"not found", &NotFoundError{Resource: "grocery list", ID: "abc"}, http.StatusNotFound, CodeNotFound},
		{"reconciliation", &ReconciliationError{ExpectedKey: "meal_plan", State: "CORRECTION_FAILED"}, http.StatusBadGateway, CodeGeneration},
		{"upstream", &UpstreamError{Service: "gemini", Cause: errors.New("timeout")}, http.StatusServiceUnavailable, CodeUpstream},
		{"wrapped upstream", fmt.Errorf("fetch catalog: %w", &UpstreamError{Service: "recipes", Cause: errors.New("refused")}), http.StatusServiceUnavailable, CodeUpstream},
		{"persistence", errors.New("disk full"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}

func TestValidationErrorMessageIsStable(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"weight":     "must be at least 50",
		"heightFeet": "is required",
	}}
	assert.Equal(t, "validation failed: heightFeet: is required; weight: must be at least 50", err.Error())
}

func TestReconciliationErrorUnwraps(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &ReconciliationError{ExpectedKey: "grocery_list", State: "CORRECTION_FAILED", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "grocery_list")
}
