package profiles

import (
	"context"
	"sync"
	"time"

	"MILESTONES_BACK-END/internal/common"
	"MILESTONES_BACK-END/internal/models"
)

// MemoryRepository holds at most one profile in memory.
type MemoryRepository struct {
	mu      sync.Mutex
	profile *models.ChildProfile
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

func (r *MemoryRepository) Get(_ context.Context) (models.ChildProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.profile == nil {
		return models.ChildProfile{}, common.ErrNotFound
	}
	return *r.profile, nil
}

func (r *MemoryRepository) Upsert(_ context.Context, in models.ProfileInput) (models.ChildProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	if r.profile == nil {
		r.profile = &models.ChildProfile{ID: models.ChildProfileID, CreatedAt: now}
	}
	r.profile.Nickname = in.Nickname
	r.profile.Gender = in.Gender
	r.profile.Birthday = in.Birthday
	r.profile.UpdatedAt = now
	return *r.profile, nil
}
