package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealplanner/backend/internal/apperrors"
	"github.com/pageza/mealplanner/backend/internal/mocks"
)

func TestRecipeServiceList(t *testing.T) {
	source := new(mocks.MockRecipeSource)
	source.On("Fetch", mock.Anything, 2).Return([]json.RawMessage{
		json.RawMessage(`{"id":1}`), json.RawMessage(`{"id":2}`),
	}, nil)

	got, err := NewRecipeService(source).List(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecipeServiceListErrors(t *testing.T) {
	failing := new(mocks.MockRecipeSource)
	failing.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	tests := []struct {
		name    string
		svc     *RecipeService
		limit   int
		wantErr any
	}{
		{"zero limit", NewRecipeService(failing), 0, &apperrors.ValidationError{}},
		{"limit too large", NewRecipeService(failing), 501, &apperrors.ValidationError{}},
		{"no source", NewRecipeService(nil), 10, &apperrors.UpstreamError{}},
		{"source failure", NewRecipeService(failing), 10, &apperrors.UpstreamError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.List(context.Background(), tt.limit)
			require.Error(t, err)
			switch tt.wantErr.(type) {
			case *apperrors.ValidationError:
				var target *apperrors.ValidationError
				assert.ErrorAs(t, err, &target)
			case *apperrors.UpstreamError:
				var target *apperrors.UpstreamError
				assert.ErrorAs(t, err, &target)
			}
		})
	}
}

func TestRecipeServiceListEmptyIsNotNil(t *testing.T) {
	source := new(mocks.MockRecipeSource)
	source.On("Fetch", mock.Anything, 30).Return([]json.RawMessage(nil), nil)

	got, err := NewRecipeService(source).List(context.Background(), DefaultRecipeLimit)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
