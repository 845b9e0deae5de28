package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MILESTONES_BACK-END/internal/common"
)

func TestMemory_GetBeforeUpsert(t *testing.T) {
	_, err := NewMemoryRepository().Get(context.Background())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemory_UpsertTwiceKeepsOneProfile(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.Upsert(ctx, input("Mia"))
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, input("Mimi"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mimi", got.Nickname)
}
