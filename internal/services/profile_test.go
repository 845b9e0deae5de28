package services

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MILESTONES_BACK-END/internal/common"
	"MILESTONES_BACK-END/internal/logging"
	"MILESTONES_BACK-END/internal/models"
	"MILESTONES_BACK-END/internal/repositories/profiles"
)

func TestProfileUpsertTwice(t *testing.T) {
	svc := NewProfileService(profiles.NewMemoryRepository(), logging.Nop())
	ctx := context.Background()
	birthday := civil.Date{Year: 2023, Month: 1, Day: 15}

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	first, err := svc.Upsert(ctx, models.ProfileInput{Nickname: "Mochi", Gender: models.GenderFemale, Birthday: birthday})
	require.NoError(t, err)
	second, err := svc.Upsert(ctx, models.ProfileInput{Nickname: "Dango", Gender: models.GenderFemale, Birthday: birthday})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dango", got.Nickname)
}

func TestProfileValidation(t *testing.T) {
	svc := NewProfileService(profiles.NewMemoryRepository(), logging.Nop())
	ctx := context.Background()
	birthday := civil.Date{Year: 2023, Month: 1, Day: 15}

	tests := []struct {
		name string
		in   models.ProfileInput
		want string
	}{
		{"nickname", models.ProfileInput{Nickname: " ", Gender: "male", Birthday: birthday}, "nickname is required"},
		{"gender", models.ProfileInput{Nickname: "Mochi", Gender: "cat", Birthday: birthday}, "gender must be one of: male, female, other"},
		{"birthday", models.ProfileInput{Nickname: "Mochi", Gender: "other"}, "birthday is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(ctx, tt.in)
			msg, ok := common.IsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, msg)
		})
	}
}
