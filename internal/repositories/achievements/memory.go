package achievements

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"MILESTONES_BACK-END/internal/common"
	"MILESTONES_BACK-END/internal/models"
)

// MemoryRepository keeps achievements in process memory. It backs local runs
// with DB_DRIVER=memory and the service and handler tests.
type MemoryRepository struct {
	mu    sync.Mutex
	rows  map[string]models.Achievement
	now   func() time.Time
	last  time.Time
	newID func() string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows:  make(map[string]models.Achievement),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.Achievement, 0, len(r.rows))
	for _, a := range r.rows {
		items = append(items, clone(a))
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date.After(items[j].Date)
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (models.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.rows[id]
	if !ok {
		return models.Achievement{}, common.ErrNotFound
	}
	return clone(a), nil
}

func (r *MemoryRepository) Create(_ context.Context, in models.AchievementInput) (models.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.tick()
	a := models.Achievement{ID: r.newID(), CreatedAt: now, UpdatedAt: now}
	in.Apply(&a)
	r.rows[a.ID] = a
	return clone(a), nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, in models.AchievementInput) (Change, error) {
	return r.mutate(id, func(a *models.Achievement) error {
		if in.KeepPhoto {
			in.PhotoURL = a.PhotoURL
		}
		in.Apply(a)
		return nil
	})
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (models.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.rows[id]
	if !ok {
		return models.Achievement{}, common.ErrNotFound
	}
	delete(r.rows, id)
	return clone(a), nil
}

func (r *MemoryRepository) AttachPhoto(_ context.Context, id, photoURL string) (Change, error) {
	return r.mutate(id, func(a *models.Achievement) error {
		a.PhotoURL = &photoURL
		return nil
	})
}

func (r *MemoryRepository) DetachPhoto(_ context.Context, id string) (Change, error) {
	return r.mutate(id, func(a *models.Achievement) error {
		if a.PhotoURL == nil {
			return common.ErrPhotoNotFound
		}
		a.PhotoURL = nil
		return nil
	})
}

func (r *MemoryRepository) mutate(id string, fn func(a *models.Achievement) error) (Change, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.rows[id]
	if !ok {
		return Change{}, common.ErrNotFound
	}
	prev := a.PhotoURL

	a = clone(a)
	if err := fn(&a); err != nil {
		return Change{}, err
	}
	a.UpdatedAt = r.tick()
	r.rows[id] = a
	return Change{Achievement: clone(a), PreviousPhoto: prev}, nil
}

// tick returns a strictly increasing timestamp so created_at ties never occur
// within one process.
func (r *MemoryRepository) tick() time.Time {
	now := r.now().UTC()
	if !now.After(r.last) {
		now = r.last.Add(time.Microsecond)
	}
	r.last = now
	return now
}

func clone(a models.Achievement) models.Achievement {
	out := a
	out.Tags = append([]string{}, a.Tags...)
	out.Description = cloneString(a.Description)
	out.PhotoURL = cloneString(a.PhotoURL)
	out.AgeYears = cloneInt32(a.AgeYears)
	out.AgeMonths = cloneInt32(a.AgeMonths)
	out.AgeDays = cloneInt32(a.AgeDays)
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt32(i *int32) *int32 {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
