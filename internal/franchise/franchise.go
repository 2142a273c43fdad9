// Package franchise resolves historical team names to the modern franchises.
package franchise

import (
	"sort"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
)

// Relocated cities, keyed by the city recorded at game time.
var cityRenames = map[string]string{
	"St. Louis":   "Atlanta",
	"San Diego":   "Los Angeles",
	"Cincinnati":  "Sacramento",
	"Tri-Cities":  "Atlanta",
	"New Jersey":  "Brooklyn",
	"Minneapolis": "Los Angeles",
	"Baltimore":   "Washington",
	"Kansas City": "Sacramento",
	"Vancouver":   "Memphis",
	"Seattle":     "Oklahoma City",
}

// Renamed nicknames. Identity entries document franchises that kept their name through a move.
var nameRenames = map[string]string{
	"Royals":      "Kings",
	"Bullets":     "Wizards",
	"Hawks":       "Hawks",
	"Clippers":    "Clippers",
	"Lakers":      "Lakers",
	"Nets":        "Nets",
	"Warriors":    "Warriors",
	"Grizzlies":   "Grizzlies",
	"SuperSonics": "Thunder",
}

var modernTeams = map[string]struct{}{
	"Atlanta Hawks":          {},
	"Boston Celtics":         {},
	"Brooklyn Nets":          {},
	"Charlotte Hornets":      {},
	"Chicago Bulls":          {},
	"Cleveland Cavaliers":    {},
	"Dallas Mavericks":       {},
	"Denver Nuggets":         {},
	"Detroit Pistons":        {},
	"Golden State Warriors":  {},
	"Houston Rockets":        {},
	"Indiana Pacers":         {},
	"Los Angeles Clippers":   {},
	"Los Angeles Lakers":     {},
	"Memphis Grizzlies":      {},
	"Miami Heat":             {},
	"Milwaukee Bucks":        {},
	"Minnesota Timberwolves": {},
	"New Orleans Pelicans":   {},
	"New York Knicks":        {},
	"Oklahoma City Thunder":  {},
	"Orlando Magic":          {},
	"Philadelphia 76ers":     {},
	"Phoenix Suns":           {},
	"Portland Trail Blazers": {},
	"Sacramento Kings":       {},
	"San Antonio Spurs":      {},
	"Toronto Raptors":        {},
	"Utah Jazz":              {},
	"Washington Wizards":     {},
}

// Canonical maps a recorded city and nickname to the franchise label they belong to.
// Unmapped values pass through unchanged; the result may not be a modern franchise.
func Canonical(city, name string) string {
	if mapped, ok := cityRenames[city]; ok {
		city = mapped
	}
	if mapped, ok := nameRenames[name]; ok {
		name = mapped
	}
	return teams.FullName(city, name)
}

// IsModern reports whether team is one of the 30 current franchises.
func IsModern(team string) bool {
	_, ok := modernTeams[team]
	return ok
}

// ModernTeams returns the current franchises in alphabetical order.
func ModernTeams() []string {
	out := make([]string, 0, len(modernTeams))
	for name := range modernTeams {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Normalize tags every row with its canonical franchise and drops rows that do not
// resolve to a modern one. The input is left untouched.
func Normalize(games boxscores.TeamGames) boxscores.TeamGames {
	rows := make([]boxscores.TeamGame, 0, len(games.Rows))
	for _, g := range games.Rows {
		team := Canonical(g.TeamCity, g.TeamName)
		if !IsModern(team) {
			continue
		}
		g.Team = team
		rows = append(rows, g)
	}
	return boxscores.TeamGames{Rows: rows, Columns: games.Columns}
}
