package recipes

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Source returns up to limit recipe documents. Documents are opaque JSON.
type Source interface {
	Fetch(ctx context.Context, limit int) ([]json.RawMessage, error)
}

// PostgresSource reads recipes from the data column of the recipes table.
type PostgresSource struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPostgresSource creates a source over an open Postgres connection
func NewPostgresSource(db *sql.DB, timeout time.Duration) *PostgresSource {
	return &PostgresSource{db: db, timeout: timeout}
}

// Fetch implements Source
func (s *PostgresSource) Fetch(ctx context.Context, limit int) ([]json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT data FROM recipes ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]json.RawMessage, 0, limit)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}
	return recipes, nil
}

// HTTPSource reads recipes from another service exposing GET /recipes?limit=N.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource creates a source for the recipe service at baseURL
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch implements Source
func (s *HTTPSource) Fetch(ctx context.Context, limit int) ([]json.RawMessage, error) {
	endpoint := s.baseURL + "/recipes?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe service returned status %d", resp.StatusCode)
	}

	var payload struct {
		Recipes []json.RawMessage `json:"recipes"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}
	return payload.Recipes, nil
}
