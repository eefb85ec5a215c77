// Package session persists grocery lists under a session identifier.
//
// Identifiers are random UUIDs and are never checked for uniqueness. A
// colliding create behaves like an overwrite: reads see the latest payload.
package session

import (
	"context"
	"encoding/json"
)

// Store is a durable key/value store for grocery list payloads. A read of an
// unknown id reports found == false with a nil error, and deleting an unknown
// id is a no-op.
type Store interface {
	Create(ctx context.Context, id string, payload json.RawMessage) error
	Get(ctx context.Context, id string) (payload json.RawMessage, found bool, err error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
