package dto

import (
	"strings"

	"cloud.google.com/go/civil"

	"MILESTONES_BACK-END/internal/models"
)

// ProfileRequest is the payload of PUT /api/profile
type ProfileRequest struct {
	Nickname string `json:"nickname" validate:"required,max=100" example:"Mochi"`
	Gender   string `json:"gender" validate:"required,oneof=male female other" example:"female"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02" example:"2023-01-15"`
}

func (r *ProfileRequest) Normalize() {
	r.Nickname = strings.TrimSpace(r.Nickname)
	r.Gender = strings.ToLower(strings.TrimSpace(r.Gender))
	r.Birthday = strings.TrimSpace(r.Birthday)
}

// ToInput converts a validated request into a store input.
func (r ProfileRequest) ToInput() (models.ProfileInput, error) {
	birthday, err := civil.ParseDate(r.Birthday)
	if err != nil {
		return models.ProfileInput{}, err
	}
	return models.ProfileInput{Nickname: r.Nickname, Gender: r.Gender, Birthday: birthday}, nil
}

// ProfileResponse is the wire form of the child profile
type ProfileResponse struct {
	ID        string `json:"id"`
	Nickname  string `json:"nickname"`
	Gender    string `json:"gender"`
	Birthday  string `json:"birthday"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func NewProfileResponse(p models.ChildProfile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Nickname:  p.Nickname,
		Gender:    p.Gender,
		Birthday:  p.Birthday.String(),
		CreatedAt: FormatTimestamp(p.CreatedAt),
		UpdatedAt: FormatTimestamp(p.UpdatedAt),
	}
}
