package models

import (
	"time"

	"cloud.google.com/go/civil"

	"MILESTONES_BACK-END/internal/agecalc"
)

// Achievement is one row of the achievements table
type Achievement struct {
	ID          string     `db:"id"`
	Date        civil.Date `db:"date"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	AgeYears    *int32     `db:"age_years"`
	AgeMonths   *int32     `db:"age_months"`
	AgeDays     *int32     `db:"age_days"`
	Tags        []string   `db:"tags"`
	PhotoURL    *string    `db:"photo_url"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// AgeAtEvent returns nil unless all three stored components are present.
func (a Achievement) AgeAtEvent() *agecalc.Age {
	if a.AgeYears == nil || a.AgeMonths == nil || a.AgeDays == nil {
		return nil
	}
	return &agecalc.Age{
		Years:  int(*a.AgeYears),
		Months: int(*a.AgeMonths),
		Days:   int(*a.AgeDays),
	}
}

// AchievementInput holds the mutable fields written by create and full update.
type AchievementInput struct {
	Date        civil.Date
	Title       string
	Description *string
	AgeAtEvent  agecalc.Age
	Tags        []string
	PhotoURL    *string

	// KeepPhoto makes an update leave the stored photo alone; PhotoURL is
	// ignored then.
	KeepPhoto bool
}

// Apply copies the input onto a row, leaving id and timestamps untouched.
func (in AchievementInput) Apply(a *Achievement) {
	years, months, days := int32(in.AgeAtEvent.Years), int32(in.AgeAtEvent.Months), int32(in.AgeAtEvent.Days)
	a.Date = in.Date
	a.Title = in.Title
	a.Description = in.Description
	a.AgeYears = &years
	a.AgeMonths = &months
	a.AgeDays = &days
	a.Tags = append([]string{}, in.Tags...)
	a.PhotoURL = in.PhotoURL
}
