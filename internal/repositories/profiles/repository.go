// Package profiles provides the single-row child profile store.
package profiles

import (
	"context"

	"MILESTONES_BACK-END/internal/models"
)

// Repository reads and writes the child profile. Get returns
// common.ErrNotFound until the first Upsert.
type Repository interface {
	Get(ctx context.Context) (models.ChildProfile, error)
	// Upsert writes the singleton row, creating it on first use.
	Upsert(ctx context.Context, in models.ProfileInput) (models.ChildProfile, error)
}
