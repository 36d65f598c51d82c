package appointment

import (
	"context"
	"errors"

	"drmike/models"
)

// ErrViewNotFound is returned for unknown or expired view sessions.
var ErrViewNotFound = errors.New("landing view session not found or expired")

// Store keeps landing view state for the lifetime of a visitor's view.
// Expiry of an entry is the view being unmounted.
type Store interface {
	Load(ctx context.Context, sessionID string) (models.ViewState, error)
	Save(ctx context.Context, state models.ViewState) error
	Ping(ctx context.Context) error
}
