// Package achievements provides the achievement record store: a PostgreSQL
// implementation over pgx and an in-memory implementation.
package achievements

import (
	"context"

	"MILESTONES_BACK-END/internal/models"
)

// Change is the result of a mutation that may stop referencing a photo.
type Change struct {
	// Achievement is the row as stored after the write.
	Achievement models.Achievement
	// PreviousPhoto is the photo URL held before the write, nil if none.
	PreviousPhoto *string
}

// Repository is the achievement record store. Missing rows are reported as
// common.ErrNotFound.
type Repository interface {
	// List returns every achievement ordered by date, then created_at, newest first.
	List(ctx context.Context) ([]models.Achievement, error)
	Get(ctx context.Context, id string) (models.Achievement, error)
	Create(ctx context.Context, in models.AchievementInput) (models.Achievement, error)
	// Update replaces every mutable field of the row.
	Update(ctx context.Context, id string, in models.AchievementInput) (Change, error)
	// Delete removes the row and returns it as it was.
	Delete(ctx context.Context, id string) (models.Achievement, error)
	AttachPhoto(ctx context.Context, id, photoURL string) (Change, error)
	// DetachPhoto clears the photo. It fails with common.ErrPhotoNotFound
	// when the row has none.
	DetachPhoto(ctx context.Context, id string) (Change, error)
}
