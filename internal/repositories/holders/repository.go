package holders

//go:generate mockgen -destination=mock/mock_repository.go -package=mockholders -source=repository.go

import (
	"context"

	"github.com/mothlight/delve/internal/effects"
)

// Repository persists each holder's materialized active-effect list. The
// stored shape is a flat list of effect records per holder; the engine owns
// all semantics, storage only round-trips.
type Repository interface {
	// Get returns the holder's active effects. A holder with no record
	// yields an empty list, not an error.
	Get(ctx context.Context, holderID string) ([]*effects.Effect, error)

	// Set replaces the holder's active effects.
	Set(ctx context.Context, holderID string, active []*effects.Effect) error

	// Delete removes the holder's record entirely.
	Delete(ctx context.Context, holderID string) error

	// GetAll returns every holder's active effects.
	GetAll(ctx context.Context) (map[string][]*effects.Effect, error)
}
