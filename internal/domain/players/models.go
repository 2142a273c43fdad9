package players

import (
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/timeutil"
)

// Player is a row from the players reference table, joined to its team.
type Player struct {
	ID          string
	FirstName   string
	LastName    string
	FullName    string
	DateOfBirth *time.Time
	TeamID      *string
	TeamName    *string
	School      *string
}

// Record is the JSON shape served for a player.
type Record struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	FullName    string  `json:"fullName"`
	DateOfBirth *string `json:"dateOfBirth"`
	Age         *int    `json:"age"`
	TeamID      *string `json:"teamId"`
	Team        *string `json:"team"`
	School      *string `json:"school"`
}

// FullName joins first and last name with a single space.
func FullName(first, last string) string {
	return first + " " + last
}

// Age returns the player's age in whole years at now, or nil without a date of birth or
// when the date of birth lies after now.
func (p Player) Age(now time.Time) *int {
	if p.DateOfBirth == nil || p.DateOfBirth.After(now) {
		return nil
	}
	age := timeutil.YearsBetween(*p.DateOfBirth, now)
	return &age
}

// Record renders the player with age derived at now.
func (p Player) Record(now time.Time) Record {
	rec := Record{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName,
		Age:       p.Age(now),
		TeamID:    p.TeamID,
		Team:      p.TeamName,
		School:    p.School,
	}
	if p.DateOfBirth != nil {
		dob := timeutil.FormatDate(*p.DateOfBirth)
		rec.DateOfBirth = &dob
	}
	return rec
}
