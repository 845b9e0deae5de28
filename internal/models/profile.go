package models

import (
	"time"

	"cloud.google.com/go/civil"
)

// ChildProfileID is the fixed key of the only child_profile row.
const ChildProfileID = "child"

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Genders lists the accepted gender labels in display order.
var Genders = []string{GenderMale, GenderFemale, GenderOther}

// ValidGender reports whether g is one of Genders.
func ValidGender(g string) bool {
	for _, v := range Genders {
		if v == g {
			return true
		}
	}
	return false
}

// ChildProfile is the singleton row of the child_profile table
type ChildProfile struct {
	ID        string     `db:"id"`
	Nickname  string     `db:"nickname"`
	Gender    string     `db:"gender"`
	Birthday  civil.Date `db:"birthday"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// ProfileInput holds the fields written by an upsert.
type ProfileInput struct {
	Nickname string
	Gender   string
	Birthday civil.Date
}
