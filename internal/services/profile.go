package services

import (
	"context"
	"fmt"
	"strings"

	"MILESTONES_BACK-END/internal/common"
	"MILESTONES_BACK-END/internal/logging"
	"MILESTONES_BACK-END/internal/models"
	"MILESTONES_BACK-END/internal/repositories/profiles"
)

type ProfileService struct {
	repo profiles.Repository
	log  logging.Logger
}

func NewProfileService(repo profiles.Repository, log logging.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log.With("component", "profile")}
}

func (s *ProfileService) Get(ctx context.Context) (models.ChildProfile, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return models.ChildProfile{}, fmt.Errorf("error fetching profile: %w", err)
	}
	return p, nil
}

// Upsert writes the child profile, creating it on first use.
func (s *ProfileService) Upsert(ctx context.Context, in models.ProfileInput) (models.ChildProfile, error) {
	in.Nickname = strings.TrimSpace(in.Nickname)
	if in.Nickname == "" {
		return models.ChildProfile{}, common.NewValidationError("nickname is required")
	}
	if !models.ValidGender(in.Gender) {
		return models.ChildProfile{}, common.NewValidationError(
			fmt.Sprintf("gender must be one of: %s", strings.Join(models.Genders, ", ")))
	}
	if in.Birthday.IsZero() || !in.Birthday.IsValid() {
		return models.ChildProfile{}, common.NewValidationError("birthday is required")
	}

	p, err := s.repo.Upsert(ctx, in)
	if err != nil {
		return models.ChildProfile{}, fmt.Errorf("error saving profile: %w", err)
	}
	s.log.Info(ctx, "profile saved", "nickname", p.Nickname)
	return p, nil
}
