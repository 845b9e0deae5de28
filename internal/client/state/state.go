// Package state keeps a client-side copy of server data as explicit state
// containers updated by pure reducer transitions.
package state

import (
	"slices"
	"strings"

	"MILESTONES_BACK-END/internal/dto"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

type AchievementsState struct {
	Items  []dto.AchievementResponse
	Status Status
	Error  string
}

// ProfileState holds the singleton profile. Profile stays nil until one
// has been saved on the server.
type ProfileState struct {
	Profile *dto.ProfileResponse
	Status  Status
	Error   string
}

type State struct {
	Achievements AchievementsState
	Profile      ProfileState
}

// Initial returns the state before any request has been made.
func Initial() State {
	return State{
		Achievements: AchievementsState{Items: []dto.AchievementResponse{}, Status: StatusIdle},
		Profile:      ProfileState{Status: StatusIdle},
	}
}

// Action is anything Reduce understands.
type Action interface {
	action()
}

type (
	AchievementsPending  struct{}
	AchievementsLoaded   struct{ Items []dto.AchievementResponse }
	AchievementsRejected struct{ Err string }
	// AchievementSaved covers create, update and photo attach/detach.
	AchievementSaved   struct{ Item dto.AchievementResponse }
	AchievementRemoved struct{ ID string }

	ProfilePending  struct{}
	ProfileLoaded   struct{ Profile *dto.ProfileResponse }
	ProfileRejected struct{ Err string }
)

func (AchievementsPending) action()  {}
func (AchievementsLoaded) action()   {}
func (AchievementsRejected) action() {}
func (AchievementSaved) action()     {}
func (AchievementRemoved) action()   {}
func (ProfilePending) action()       {}
func (ProfileLoaded) action()        {}
func (ProfileRejected) action()      {}

// Reduce returns the state that follows s after a. It never mutates s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AchievementsPending:
		s.Achievements.Status = StatusLoading
		s.Achievements.Error = ""
	case AchievementsLoaded:
		s.Achievements = AchievementsState{Items: sorted(a.Items), Status: StatusSucceeded}
	case AchievementsRejected:
		s.Achievements.Status = StatusFailed
		s.Achievements.Error = a.Err
	case AchievementSaved:
		items := make([]dto.AchievementResponse, 0, len(s.Achievements.Items)+1)
		for _, it := range s.Achievements.Items {
			if it.ID != a.Item.ID {
				items = append(items, it)
			}
		}
		items = append(items, a.Item)
		s.Achievements = AchievementsState{Items: sorted(items), Status: StatusSucceeded}
	case AchievementRemoved:
		items := make([]dto.AchievementResponse, 0, len(s.Achievements.Items))
		for _, it := range s.Achievements.Items {
			if it.ID != a.ID {
				items = append(items, it)
			}
		}
		s.Achievements = AchievementsState{Items: items, Status: StatusSucceeded}
	case ProfilePending:
		s.Profile.Status = StatusLoading
		s.Profile.Error = ""
	case ProfileLoaded:
		var p *dto.ProfileResponse
		if a.Profile != nil {
			cp := *a.Profile
			p = &cp
		}
		s.Profile = ProfileState{Profile: p, Status: StatusSucceeded}
	case ProfileRejected:
		s.Profile.Status = StatusFailed
		s.Profile.Error = a.Err
	}
	return s
}

// sorted copies items into server order: date desc, then createdAt desc.
// Both fields are fixed-width UTC strings so they compare lexically.
func sorted(items []dto.AchievementResponse) []dto.AchievementResponse {
	out := slices.Clone(items)
	if out == nil {
		out = []dto.AchievementResponse{}
	}
	slices.SortStableFunc(out, func(a, b dto.AchievementResponse) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return strings.Compare(b.CreatedAt, a.CreatedAt)
	})
	return out
}
