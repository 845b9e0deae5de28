// Package agecalc computes a child's age at an event as a calendar-correct
// years/months/days breakdown.
package agecalc

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrEventBeforeBirth = errors.New("event date cannot be before birth date")
)

// Age is the elapsed time between two dates. Months is in [0,11] and Days is
// bounded by the length of the month following the birth day-of-month.
type Age struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

func (a Age) String() string {
	return fmt.Sprintf("%dy %dm %dd", a.Years, a.Months, a.Days)
}

// Compute parses two YYYY-MM-DD dates and returns the age at eventDate of a
// child born on birthDate.
func Compute(birthDate, eventDate string) (Age, error) {
	birth, err := civil.ParseDate(birthDate)
	if err != nil {
		return Age{}, fmt.Errorf("%w: birth date %q", ErrInvalidDate, birthDate)
	}
	event, err := civil.ParseDate(eventDate)
	if err != nil {
		return Age{}, fmt.Errorf("%w: event date %q", ErrInvalidDate, eventDate)
	}
	return Between(birth, event)
}

// Between steps back from event: whole years first, then whole months from
// the remainder, then the leftover days.
func Between(birth, event civil.Date) (Age, error) {
	if !birth.IsValid() || !event.IsValid() {
		return Age{}, ErrInvalidDate
	}
	if event.Before(birth) {
		return Age{}, ErrEventBeforeBirth
	}

	years := wholeYears(birth, event)
	afterYears := AddMonths(event, -12*years)

	months := wholeMonths(birth, afterYears)
	afterMonths := AddMonths(afterYears, -months)

	return Age{
		Years:  years,
		Months: months,
		Days:   afterMonths.DaysSince(birth),
	}, nil
}

// Rewind subtracts age from event using the same stepping as Between.
// Rewind(event, Between(birth, event)) == birth.
func Rewind(event civil.Date, age Age) civil.Date {
	d := AddMonths(event, -12*age.Years)
	d = AddMonths(d, -age.Months)
	return d.AddDays(-age.Days)
}

// AddMonths moves d by n calendar months. When the target month is shorter
// the day is clamped to its last day (2024-02-29 minus 12 months is 2023-02-28).
func AddMonths(d civil.Date, n int) civil.Date {
	total := d.Year*12 + int(d.Month) - 1 + n
	year, month := floorDiv(total, 12), total-floorDiv(total, 12)*12
	target := time.Month(month + 1)

	day := d.Day
	if last := daysIn(year, target); day > last {
		day = last
	}
	return civil.Date{Year: year, Month: target, Day: day}
}

func wholeYears(from, to civil.Date) int {
	n := to.Year - from.Year
	if to.Month < from.Month || (to.Month == from.Month && to.Day < from.Day) {
		n--
	}
	return n
}

func wholeMonths(from, to civil.Date) int {
	n := (to.Year-from.Year)*12 + int(to.Month) - int(from.Month)
	if to.Day < from.Day {
		n--
	}
	return n
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
