package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pageza/mealplanner/backend/internal/model"
)

// SQLStore keeps grocery lists in the grocery_lists table.
type SQLStore struct {
	db *gorm.DB
}

// NewSQLStore creates a store over a migrated gorm database
func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Create implements Store
func (s *SQLStore) Create(ctx context.Context, id string, payload json.RawMessage) error {
	record := &model.GroceryListRecord{
		SessionID: id,
		ListData:  string(payload),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to store grocery list: %w", err)
	}
	return nil
}

// Get implements Store. The newest row wins when an id was stored twice.
func (s *SQLStore) Get(ctx context.Context, id string) (json.RawMessage, bool, error) {
	var record model.GroceryListRecord
	err := s.db.WithContext(ctx).
		Where("session_id = ?", id).
		Order("id DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read grocery list: %w", err)
	}
	return json.RawMessage(record.ListData), true, nil
}

// Delete implements Store
func (s *SQLStore) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).
		Where("session_id = ?", id).
		Delete(&model.GroceryListRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete grocery list: %w", err)
	}
	return nil
}

// Ping implements Store
func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
