package recipes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNoRecipes is returned when a seed file holds no recipe documents
var ErrNoRecipes = errors.New("no recipes found")

// DecodeSeed reads recipe documents from either a bare JSON array or an
// object with a "recipes" array.
func DecodeSeed(r io.Reader) ([]json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	var docs []json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		var wrapped struct {
			Recipes []json.RawMessage `json:"recipes"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("seed file must be an array or an object with a recipes array: %w", err)
		}
		docs = wrapped.Recipes
	}

	if len(docs) == 0 {
		return nil, ErrNoRecipes
	}
	for i, doc := range docs {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(doc, &obj); err != nil {
			return nil, fmt.Errorf("recipe %d is not a JSON object", i)
		}
	}
	return docs, nil
}

// Seed inserts docs into the recipes table in one transaction
func Seed(ctx context.Context, db *sql.DB, docs []json.RawMessage) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO recipes (data) VALUES ($1)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, doc := range docs {
		if _, err := stmt.ExecContext(ctx, string(doc)); err != nil {
			return 0, fmt.Errorf("failed to insert recipe %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit recipes: %w", err)
	}
	return len(docs), nil
}
