// Package services holds the operations behind the HTTP handlers: input
// checks, store calls and photo cleanup.
package services

import (
	"context"
	"fmt"
	"strings"

	"MILESTONES_BACK-END/internal/common"
	"MILESTONES_BACK-END/internal/logging"
	"MILESTONES_BACK-END/internal/models"
	"MILESTONES_BACK-END/internal/photos"
	"MILESTONES_BACK-END/internal/repositories/achievements"
)

type AchievementService struct {
	repo   achievements.Repository
	photos photos.Store
	log    logging.Logger
}

func NewAchievementService(repo achievements.Repository, store photos.Store, log logging.Logger) *AchievementService {
	return &AchievementService{
		repo:   repo,
		photos: store,
		log:    log.With("component", "achievements"),
	}
}

func (s *AchievementService) List(ctx context.Context) ([]models.Achievement, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching achievements: %w", err)
	}
	return rows, nil
}

func (s *AchievementService) Get(ctx context.Context, id string) (models.Achievement, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Achievement{}, fmt.Errorf("error fetching achievement %s: %w", id, err)
	}
	return a, nil
}

func (s *AchievementService) Create(ctx context.Context, in models.AchievementInput) (models.Achievement, error) {
	if err := validateAchievement(in); err != nil {
		return models.Achievement{}, err
	}
	a, err := s.repo.Create(ctx, in)
	if err != nil {
		return models.Achievement{}, fmt.Errorf("error creating achievement: %w", err)
	}
	s.log.Info(ctx, "achievement created", "id", a.ID)
	return a, nil
}

// Update replaces the achievement. A photo URL that is no longer referenced
// afterwards is removed from storage.
func (s *AchievementService) Update(ctx context.Context, id string, in models.AchievementInput) (models.Achievement, error) {
	if err := validateAchievement(in); err != nil {
		return models.Achievement{}, err
	}
	change, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return models.Achievement{}, fmt.Errorf("error updating achievement %s: %w", id, err)
	}
	s.dropReplaced(ctx, change)
	return change.Achievement, nil
}

// Delete removes the achievement and then its photo, if any.
func (s *AchievementService) Delete(ctx context.Context, id string) (models.Achievement, error) {
	a, err := s.repo.Delete(ctx, id)
	if err != nil {
		return models.Achievement{}, fmt.Errorf("error deleting achievement %s: %w", id, err)
	}
	s.removePhoto(ctx, a.PhotoURL)
	s.log.Info(ctx, "achievement deleted", "id", id)
	return a, nil
}

// AttachPhoto uploads data and points the achievement at it. The
// achievement is checked first so nothing is uploaded for an unknown id.
func (s *AchievementService) AttachPhoto(ctx context.Context, id string, data []byte, originalName string) (models.Achievement, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return models.Achievement{}, fmt.Errorf("error fetching achievement %s: %w", id, err)
	}

	url, err := s.photos.Upload(ctx, data, originalName)
	if err != nil {
		return models.Achievement{}, fmt.Errorf("error uploading photo: %w", err)
	}

	change, err := s.repo.AttachPhoto(ctx, id, url)
	if err != nil {
		s.removePhoto(ctx, &url)
		return models.Achievement{}, fmt.Errorf("error attaching photo to achievement %s: %w", id, err)
	}
	s.dropReplaced(ctx, change)
	s.log.Info(ctx, "photo attached", "id", id, "url", url)
	return change.Achievement, nil
}

// DetachPhoto clears the photo and removes the stored object.
func (s *AchievementService) DetachPhoto(ctx context.Context, id string) (models.Achievement, error) {
	change, err := s.repo.DetachPhoto(ctx, id)
	if err != nil {
		return models.Achievement{}, fmt.Errorf("error removing photo from achievement %s: %w", id, err)
	}
	s.removePhoto(ctx, change.PreviousPhoto)
	return change.Achievement, nil
}

func (s *AchievementService) dropReplaced(ctx context.Context, change achievements.Change) {
	prev := change.PreviousPhoto
	if prev == nil {
		return
	}
	if cur := change.Achievement.PhotoURL; cur != nil && *cur == *prev {
		return
	}
	s.removePhoto(ctx, prev)
}

// removePhoto deletes a stored object. Failures are logged and otherwise
// ignored: the achievement row is the source of truth.
func (s *AchievementService) removePhoto(ctx context.Context, url *string) {
	if url == nil || *url == "" {
		return
	}
	if err := s.photos.Delete(ctx, *url); err != nil {
		s.log.Warn(ctx, "photo cleanup failed", "url", *url, "error", err)
	}
}

func validateAchievement(in models.AchievementInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return common.NewValidationError("title is required")
	}
	if in.Date.IsZero() || !in.Date.IsValid() {
		return common.NewValidationError("date is required")
	}
	age := in.AgeAtEvent
	if age.Years < 0 || age.Months < 0 || age.Days < 0 {
		return common.NewValidationError("ageAtEvent components must be non-negative")
	}
	return nil
}
