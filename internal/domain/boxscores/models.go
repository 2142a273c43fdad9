package boxscores

import (
	"strings"
	"time"
)

// Columns describes which optional columns a source table carried.
type Columns struct {
	Stats    FieldSet
	Season   bool
	GameDate bool
}

// TeamGame is one team's box score for one game. Team is the canonical franchise, empty
// until the row has been normalized. SeasonLabel keeps the raw season cell when it is not
// a whole year.
type TeamGame struct {
	TeamCity    string
	TeamName    string
	Team        string
	Season      *int
	SeasonLabel string
	GameDate    *time.Time
	Stats       Line
}

// TeamGames is a loaded team box-score table.
type TeamGames struct {
	Rows    []TeamGame
	Columns Columns
}

// PlayerGame is one player's box score for one game.
type PlayerGame struct {
	PersonID  string
	FirstName string
	LastName  string
	Player    string
	Season    *int
	GameDate  *time.Time
	Stats     Line
}

// PlayerGames is a loaded player box-score table.
type PlayerGames struct {
	Rows    []PlayerGame
	Columns Columns
}

// PlayerKey builds the grouping key for a player from raw name cells.
func PlayerKey(first, last string) string {
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}

// SamePlayer compares player names the way lookups do: trimmed and case-insensitive.
func SamePlayer(key, query string) bool {
	return strings.EqualFold(strings.TrimSpace(key), strings.TrimSpace(query))
}
