package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealplanner/backend/internal/apperrors"
	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/mocks"
	"github.com/pageza/mealplanner/backend/internal/session"
	"github.com/pageza/mealplanner/backend/internal/testhelpers"
)

const groceryResponse = `Here is the list:
{"grocery_list":[
  {"item":"Rolled Oats","quantity":"1 lb","category":"Pantry","link":null,"protein":"13g","carbs":"68g","fats":"7g","calories":"389"},
  {"item":"Salmon","quantity":"2 lbs","category":"Protein","link":"https://example.com/salmon","protein":25,"carbs":0,"fats":13,"cals":208}
]}`

var sampleMealPlan = []json.RawMessage{
	json.RawMessage(`{"day":"Monday","breakfast":"Oats","lunch":"Salad","dinner":"Salmon","snacks":"Apple"}`),
}

func TestGroceryListRoundTrip(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything).Return(groceryResponse, nil).Once()

	store := session.NewSQLStore(testhelpers.SetupSQLite(t))
	svc := NewGroceryListService(newTestReconciler(gen), store, metrics.New(), nil)

	ctx := context.Background()
	created, err := svc.Create(ctx, sampleMealPlan)
	require.NoError(t, err)
	require.NotEmpty(t, created.SessionID)
	require.Len(t, created.GroceryList, 2)
	assert.Equal(t, "208", created.GroceryList[1].Calories.Value)
	require.NotNil(t, created.GroceryList[1].Link)

	got, err := svc.Get(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, created.GroceryList, got)

	require.NoError(t, svc.Delete(ctx, created.SessionID))
	_, err = svc.Get(ctx, created.SessionID)
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestGroceryListEmbedsMealPlanInPrompt(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("GenerateContent", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, `"breakfast": "Oats"`) && strings.Contains(p, "they cannot be verified")
	})).Return(groceryResponse, nil).Once()

	store := new(mocks.MockSessionStore)
	store.On("Create", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()

	svc := NewGroceryListService(newTestReconciler(gen), store, nil, nil)
	svc.newID = func() string { return "fixed-session" }

	created, err := svc.Create(context.Background(), sampleMealPlan)
	require.NoError(t, err)
	assert.Equal(t, "fixed-session", created.SessionID)
	gen.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestGroceryListEmptyListIsNotPersisted(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything).Return(`{"grocery_list": []}`, nil)
	store := new(mocks.MockSessionStore)

	svc := NewGroceryListService(newTestReconciler(gen), store, nil, nil)
	_, err := svc.Create(context.Background(), sampleMealPlan)

	var recErr *apperrors.ReconciliationError
	require.ErrorAs(t, err, &recErr)
	gen.AssertNumberOfCalls(t, "GenerateContent", 2)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestGroceryListRejectsEmptyMealPlan(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	svc := NewGroceryListService(newTestReconciler(gen), new(mocks.MockSessionStore), nil, nil)

	_, err := svc.Create(context.Background(), nil)

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "meal_plan")
}

func TestGroceryListRejectsNonObjectEntries(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	store := new(mocks.MockSessionStore)
	svc := NewGroceryListService(newTestReconciler(gen), store, nil, nil)

	_, err := svc.Create(context.Background(), []json.RawMessage{
		json.RawMessage(`null`),
		json.RawMessage(`42`),
		json.RawMessage(`"x"`),
		json.RawMessage(`{"day":"Monday","breakfast":"Oats"}`),
	})

	var valErr *apperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, map[string]string{
		"meal_plan[0]": "must be an object",
		"meal_plan[1]": "must be an object",
		"meal_plan[2]": "must be an object",
	}, valErr.Fields)
	gen.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestGroceryListPersistenceFailurePropagates(t *testing.T) {
	gen := new(mocks.MockTextGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything).Return(groceryResponse, nil)
	store := new(mocks.MockSessionStore)
	store.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	svc := NewGroceryListService(newTestReconciler(gen), store, nil, nil)
	_, err := svc.Create(context.Background(), sampleMealPlan)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(err))
}

func TestGroceryListGetUnknownSession(t *testing.T) {
	store := new(mocks.MockSessionStore)
	store.On("Get", mock.Anything, "missing").Return(nil, false, nil)

	svc := NewGroceryListService(nil, store, nil, nil)
	_, err := svc.Get(context.Background(), "missing")

	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestGroceryListDeleteUnknownSession(t *testing.T) {
	svc := NewGroceryListService(nil, session.NewSQLStore(testhelpers.SetupSQLite(t)), nil, nil)
	assert.NoError(t, svc.Delete(context.Background(), "never-created"))
}
