// Package session implements cookie-based sessions with an opaque token and
// a pluggable server-side store. The token carries no claims; the store maps
// it to the logged-in user's ID.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when a token is unknown or has expired.
var ErrSessionNotFound = errors.New("session not found")

// Store persists the token -> user ID mapping. Implementations must be safe
// for concurrent use.
type Store interface {
	Set(ctx context.Context, token string, userID int64, ttl time.Duration) error
	Get(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}
