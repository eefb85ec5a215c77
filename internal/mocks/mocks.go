package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealplanner/backend/internal/model"
)

// MockTextGenerator is a mock implementation of llm.TextGenerator
type MockTextGenerator struct {
	mock.Mock
}

// GenerateContent mocks the GenerateContent method
func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockRecipeSource is a mock implementation of recipes.Source
type MockRecipeSource struct {
	mock.Mock
}

// Fetch mocks the Fetch method
func (m *MockRecipeSource) Fetch(ctx context.Context, limit int) ([]json.RawMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

// MockSessionStore is a mock implementation of session.Store
type MockSessionStore struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockSessionStore) Create(ctx context.Context, id string, payload json.RawMessage) error {
	args := m.Called(ctx, id, payload)
	return args.Error(0)
}

// Get mocks the Get method
func (m *MockSessionStore) Get(ctx context.Context, id string) (json.RawMessage, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(json.RawMessage), args.Bool(1), args.Error(2)
}

// Delete mocks the Delete method
func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Ping mocks the Ping method
func (m *MockSessionStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockMealPlanService is a mock implementation of service.IMealPlanService
type MockMealPlanService struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockMealPlanService) Generate(ctx context.Context, profile model.Profile) (*model.MealPlan, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealPlan), args.Error(1)
}

// MockGroceryListService is a mock implementation of service.IGroceryListService
type MockGroceryListService struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockGroceryListService) Create(ctx context.Context, mealPlan []json.RawMessage) (*model.GroceryListResult, error) {
	args := m.Called(ctx, mealPlan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroceryListResult), args.Error(1)
}

// Get mocks the Get method
func (m *MockGroceryListService) Get(ctx context.Context, sessionID string) ([]model.GroceryItem, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GroceryItem), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockGroceryListService) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockRecipeService is a mock implementation of service.IRecipeService
type MockRecipeService struct {
	mock.Mock
}

// List mocks the List method
func (m *MockRecipeService) List(ctx context.Context, limit int) ([]json.RawMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}
