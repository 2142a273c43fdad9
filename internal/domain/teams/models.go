package teams

import "strings"

// Team is a franchise row from the teams reference table.
type Team struct {
	ID           string `json:"id"`
	City         string `json:"city"`
	Nickname     string `json:"nickname"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
	Division     string `json:"division"`
	YearFounded  *int   `json:"yearFounded"`
}

// FullName joins city and nickname the way team box scores and player rows refer to a team.
func FullName(city, nickname string) string {
	return city + " " + nickname
}

// HasFullName reports whether the team carries a usable display name.
func (t Team) HasFullName() bool {
	return strings.TrimSpace(t.FullName) != ""
}
