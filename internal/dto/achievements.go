package dto

import (
	"strings"

	"cloud.google.com/go/civil"

	"MILESTONES_BACK-END/internal/agecalc"
	"MILESTONES_BACK-END/internal/models"
)

// AgeRequest is the ageAtEvent object of a create or update payload. The
// fields are pointers so an absent component is told apart from zero.
type AgeRequest struct {
	Years  *int `json:"years" validate:"required,min=0"`
	Months *int `json:"months" validate:"required,min=0,max=11"`
	Days   *int `json:"days" validate:"required,min=0,max=30"`
}

// AchievementRequest is the payload of POST /api/achievements and
// PUT /api/achievements/{id}
type AchievementRequest struct {
	Date        string      `json:"date" validate:"required,datetime=2006-01-02" example:"2024-03-10"`
	Title       string      `json:"title" validate:"required,max=200" example:"First steps"`
	Description *string     `json:"description,omitempty"`
	AgeAtEvent  *AgeRequest `json:"ageAtEvent" validate:"required"`
	Tags        []string    `json:"tags,omitempty" validate:"dive,max=50"`
	// PhotoURL left out of an update keeps the current photo; "" clears it.
	PhotoURL *string `json:"photoUrl,omitempty" validate:"omitempty,url"`
}

// Normalize trims text fields and drops blank tags before validation.
func (r *AchievementRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Title = strings.TrimSpace(r.Title)
	r.Description = nullIfBlank(r.Description)
	if r.PhotoURL != nil {
		u := strings.TrimSpace(*r.PhotoURL)
		r.PhotoURL = &u
	}
	r.Tags = CleanTags(r.Tags)
}

// ToInput converts a validated request into a store input.
func (r AchievementRequest) ToInput() (models.AchievementInput, error) {
	date, err := civil.ParseDate(r.Date)
	if err != nil {
		return models.AchievementInput{}, err
	}
	in := models.AchievementInput{
		Date:        date,
		Title:       r.Title,
		Description: r.Description,
		Tags:        CleanTags(r.Tags),
		PhotoURL:    nullIfBlank(r.PhotoURL),
		KeepPhoto:   r.PhotoURL == nil,
	}
	if r.AgeAtEvent != nil && r.AgeAtEvent.Years != nil && r.AgeAtEvent.Months != nil && r.AgeAtEvent.Days != nil {
		in.AgeAtEvent = agecalc.Age{
			Years:  *r.AgeAtEvent.Years,
			Months: *r.AgeAtEvent.Months,
			Days:   *r.AgeAtEvent.Days,
		}
	}
	return in, nil
}

// AchievementResponse is the wire form of an achievement
type AchievementResponse struct {
	ID          string       `json:"id"`
	Date        string       `json:"date" example:"2024-03-10"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	AgeAtEvent  *agecalc.Age `json:"ageAtEvent"`
	Tags        []string     `json:"tags"`
	Photo       *string      `json:"photo"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

// NewAchievementResponse reshapes a stored row. Every read path goes
// through here: a partial age becomes null, missing tags become [] and
// blank description or photo become null.
func NewAchievementResponse(a models.Achievement) AchievementResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return AchievementResponse{
		ID:          a.ID,
		Date:        a.Date.String(),
		Title:       a.Title,
		Description: nullIfBlank(a.Description),
		AgeAtEvent:  a.AgeAtEvent(),
		Tags:        tags,
		Photo:       nullIfBlank(a.PhotoURL),
		CreatedAt:   FormatTimestamp(a.CreatedAt),
		UpdatedAt:   FormatTimestamp(a.UpdatedAt),
	}
}

// NewAchievementListResponse reshapes rows in order. An empty list encodes
// as [].
func NewAchievementListResponse(rows []models.Achievement) []AchievementResponse {
	out := make([]AchievementResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, NewAchievementResponse(a))
	}
	return out
}

// CleanTags trims each tag and drops empty ones, keeping order.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ParseTags splits comma separated input the way the tag field is entered:
// "walking, , first" becomes ["walking", "first"].
func ParseTags(s string) []string {
	return CleanTags(strings.Split(s, ","))
}
