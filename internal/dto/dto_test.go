package dto

import (
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MILESTONES_BACK-END/internal/agecalc"
	"MILESTONES_BACK-END/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestNewAchievementResponseCollapsesPartialAge(t *testing.T) {
	ts := time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)
	row := models.Achievement{
		ID:        "a1",
		Date:      civil.Date{Year: 2024, Month: 3, Day: 10},
		Title:     "First steps",
		AgeYears:  ptr(int32(1)),
		AgeDays:   ptr(int32(3)),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	resp := NewAchievementResponse(row)
	assert.Nil(t, resp.AgeAtEvent)
	assert.Equal(t, []string{}, resp.Tags)
	assert.Nil(t, resp.Description)
	assert.Nil(t, resp.Photo)
	assert.Equal(t, "2024-03-10", resp.Date)
	assert.Equal(t, "2024-03-10T08:30:00.000Z", resp.CreatedAt)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "a1", "date": "2024-03-10", "title": "First steps",
		"description": null, "ageAtEvent": null, "tags": [], "photo": null,
		"createdAt": "2024-03-10T08:30:00.000Z", "updatedAt": "2024-03-10T08:30:00.000Z"
	}`, string(raw))
}

func TestNewAchievementResponseFull(t *testing.T) {
	row := models.Achievement{
		ID:          "a2",
		Date:        civil.Date{Year: 2024, Month: 3, Day: 10},
		Title:       "Cake",
		Description: ptr("  chocolate "),
		AgeYears:    ptr(int32(1)),
		AgeMonths:   ptr(int32(1)),
		AgeDays:     ptr(int32(26)),
		Tags:        []string{"food", "party"},
		PhotoURL:    ptr("http://localhost/photos/cake-1.jpg"),
	}

	resp := NewAchievementResponse(row)
	require.NotNil(t, resp.AgeAtEvent)
	assert.Equal(t, agecalc.Age{Years: 1, Months: 1, Days: 26}, *resp.AgeAtEvent)
	assert.Equal(t, "  chocolate ", *resp.Description)
	assert.Equal(t, "http://localhost/photos/cake-1.jpg", *resp.Photo)
	assert.Equal(t, []string{"food", "party"}, resp.Tags)
}

func TestNewAchievementListResponseEmpty(t *testing.T) {
	raw, err := json.Marshal(NewAchievementListResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestAchievementRequestNormalizeAndInput(t *testing.T) {
	req := AchievementRequest{
		Date:        " 2024-03-10 ",
		Title:       "  First steps ",
		Description: ptr("   "),
		AgeAtEvent:  &AgeRequest{Years: ptr(1), Months: ptr(1), Days: ptr(26)},
		Tags:        []string{" walking", "", "  ", "first "},
		PhotoURL:    ptr(""),
	}
	req.Normalize()

	assert.Equal(t, "First steps", req.Title)
	assert.Nil(t, req.Description)
	require.NotNil(t, req.PhotoURL)
	assert.Empty(t, *req.PhotoURL)
	assert.Equal(t, []string{"walking", "first"}, req.Tags)

	in, err := req.ToInput()
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: 3, Day: 10}, in.Date)
	assert.Equal(t, agecalc.Age{Years: 1, Months: 1, Days: 26}, in.AgeAtEvent)
	assert.Nil(t, in.PhotoURL)
	assert.False(t, in.KeepPhoto, "an empty photoUrl clears the photo")
}

func TestAchievementRequestKeepsDescriptionText(t *testing.T) {
	req := AchievementRequest{
		Date:        "2024-03-10",
		Title:       "Song",
		Description: ptr("\n  Sang along:\n  la la la\n"),
		AgeAtEvent:  &AgeRequest{Years: ptr(1), Months: ptr(1), Days: ptr(26)},
	}
	req.Normalize()
	require.NotNil(t, req.Description)
	assert.Equal(t, "\n  Sang along:\n  la la la\n", *req.Description)
}

func TestAchievementRequestWithoutPhotoURLKeepsPhoto(t *testing.T) {
	req := AchievementRequest{
		Date:       "2024-03-10",
		Title:      "Walk",
		AgeAtEvent: &AgeRequest{Years: ptr(1), Months: ptr(1), Days: ptr(26)},
	}
	req.Normalize()
	in, err := req.ToInput()
	require.NoError(t, err)
	assert.True(t, in.KeepPhoto)
	assert.Nil(t, in.PhotoURL)

	req.PhotoURL = ptr(" https://cdn.example.com/walk.jpg ")
	req.Normalize()
	in, err = req.ToInput()
	require.NoError(t, err)
	assert.False(t, in.KeepPhoto)
	assert.Equal(t, "https://cdn.example.com/walk.jpg", *in.PhotoURL)
}

func TestAchievementRequestBadDate(t *testing.T) {
	_, err := AchievementRequest{Date: "10/03/2024"}.ToInput()
	assert.Error(t, err)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"walking", "first"}, ParseTags("walking, , first,"))
	assert.Equal(t, []string{}, ParseTags(""))
}

func TestProfileRequest(t *testing.T) {
	req := ProfileRequest{Nickname: " Mochi ", Gender: " Female", Birthday: "2023-01-15"}
	req.Normalize()
	assert.Equal(t, "Mochi", req.Nickname)
	assert.Equal(t, "female", req.Gender)

	in, err := req.ToInput()
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2023, Month: 1, Day: 15}, in.Birthday)

	resp := NewProfileResponse(models.ChildProfile{ID: models.ChildProfileID, Nickname: in.Nickname, Gender: in.Gender, Birthday: in.Birthday})
	assert.Equal(t, "2023-01-15", resp.Birthday)
	assert.Equal(t, "child", resp.ID)
}
