package recipes

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/mealplanner/backend/internal/database"
	"github.com/pageza/mealplanner/backend/internal/testhelpers"
)

func TestDecodeSeed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "bare array", input: `[{"name":"Chili"},{"name":"Pho"}]`, want: 2},
		{name: "wrapped", input: `{"recipes":[{"name":"Chili"}]}`, want: 1},
		{name: "empty array", input: `[]`, wantErr: true},
		{name: "scalar entries", input: `[1,2]`, wantErr: true},
		{name: "not json", input: `recipes`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := DecodeSeed(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, docs, tt.want)
		})
	}
}

func TestSeedThenFetch(t *testing.T) {
	db := testhelpers.SetupPostgres(t)
	ctx := context.Background()
	require.NoError(t, database.EnsureRecipesTable(ctx, db))

	docs := []json.RawMessage{
		json.RawMessage(`{"name":"Shakshuka","ingredients":["eggs","tomatoes"]}`),
		json.RawMessage(`{"name":"Dal","ingredients":["lentils"]}`),
	}
	n, err := Seed(ctx, db, docs)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := NewPostgresSource(db, 5*time.Second).Fetch(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.JSONEq(t, string(docs[0]), string(got[0]))
}
