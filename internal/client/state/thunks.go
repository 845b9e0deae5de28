package state

import (
	"context"
	"errors"

	"MILESTONES_BACK-END/internal/client"
	"MILESTONES_BACK-END/internal/dto"
)

// API is the part of *client.Client the thunks call.
type API interface {
	ListAchievements(ctx context.Context) ([]dto.AchievementResponse, error)
	CreateAchievement(ctx context.Context, req dto.AchievementRequest) (dto.AchievementResponse, error)
	UpdateAchievement(ctx context.Context, id string, req dto.AchievementRequest) (dto.AchievementResponse, error)
	DeleteAchievement(ctx context.Context, id string) (dto.DeleteResponse, error)
	UploadPhoto(ctx context.Context, id, filename string, data []byte) (dto.AchievementResponse, error)
	DeletePhoto(ctx context.Context, id string) (dto.AchievementResponse, error)
	GetProfile(ctx context.Context) (dto.ProfileResponse, error)
	SaveProfile(ctx context.Context, req dto.ProfileRequest) (dto.ProfileResponse, error)
}

var _ API = (*client.Client)(nil)

func FetchAchievements(ctx context.Context, s *Store, api API) error {
	s.Dispatch(AchievementsPending{})
	items, err := api.ListAchievements(ctx)
	if err != nil {
		s.Dispatch(AchievementsRejected{Err: err.Error()})
		return err
	}
	s.Dispatch(AchievementsLoaded{Items: items})
	return nil
}

func AddAchievement(ctx context.Context, s *Store, api API, req dto.AchievementRequest) (dto.AchievementResponse, error) {
	return saveAchievement(s, func() (dto.AchievementResponse, error) {
		return api.CreateAchievement(ctx, req)
	})
}

func EditAchievement(ctx context.Context, s *Store, api API, id string, req dto.AchievementRequest) (dto.AchievementResponse, error) {
	return saveAchievement(s, func() (dto.AchievementResponse, error) {
		return api.UpdateAchievement(ctx, id, req)
	})
}

func AttachPhoto(ctx context.Context, s *Store, api API, id, filename string, data []byte) (dto.AchievementResponse, error) {
	return saveAchievement(s, func() (dto.AchievementResponse, error) {
		return api.UploadPhoto(ctx, id, filename, data)
	})
}

func DetachPhoto(ctx context.Context, s *Store, api API, id string) (dto.AchievementResponse, error) {
	return saveAchievement(s, func() (dto.AchievementResponse, error) {
		return api.DeletePhoto(ctx, id)
	})
}

func RemoveAchievement(ctx context.Context, s *Store, api API, id string) error {
	s.Dispatch(AchievementsPending{})
	if _, err := api.DeleteAchievement(ctx, id); err != nil {
		s.Dispatch(AchievementsRejected{Err: err.Error()})
		return err
	}
	s.Dispatch(AchievementRemoved{ID: id})
	return nil
}

func saveAchievement(s *Store, call func() (dto.AchievementResponse, error)) (dto.AchievementResponse, error) {
	s.Dispatch(AchievementsPending{})
	a, err := call()
	if err != nil {
		s.Dispatch(AchievementsRejected{Err: err.Error()})
		return a, err
	}
	s.Dispatch(AchievementSaved{Item: a})
	return a, nil
}

// FetchProfile loads the profile. A 404 means none was saved yet and
// leaves Profile nil rather than failing.
func FetchProfile(ctx context.Context, s *Store, api API) error {
	s.Dispatch(ProfilePending{})
	p, err := api.GetProfile(ctx)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.NotFound() {
			s.Dispatch(ProfileLoaded{})
			return nil
		}
		s.Dispatch(ProfileRejected{Err: err.Error()})
		return err
	}
	s.Dispatch(ProfileLoaded{Profile: &p})
	return nil
}

func SaveProfile(ctx context.Context, s *Store, api API, req dto.ProfileRequest) (dto.ProfileResponse, error) {
	s.Dispatch(ProfilePending{})
	p, err := api.SaveProfile(ctx, req)
	if err != nil {
		s.Dispatch(ProfileRejected{Err: err.Error()})
		return p, err
	}
	s.Dispatch(ProfileLoaded{Profile: &p})
	return p, nil
}
