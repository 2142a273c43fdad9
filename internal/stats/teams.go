package stats

import (
	"sort"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-service/internal/franchise"
)

// TeamAverage is the per-game average of one franchise across all its games.
type TeamAverage struct {
	Team         string
	Abbreviation *string
	Division     *string
	Stats        Line
}

// MarshalJSON keeps the team label first, then the directory fields, then the stats.
func (a TeamAverage) MarshalJSON() ([]byte, error) {
	o := newObject()
	o.field("team", a.Team)
	o.field("abbreviation", a.Abbreviation)
	o.field("division", a.Division)
	o.stats(a.Stats)
	return o.bytes()
}

// TeamAverages groups normalized team games by franchise and averages every team field
// present in the table. Output is sorted by team.
func TeamAverages(games boxscores.TeamGames, directory []teams.Team) []TeamAverage {
	fields := games.Columns.Stats.Select(boxscores.TeamFields)
	groups := make(map[string]*accumulator)
	for _, g := range games.Rows {
		if !franchise.IsModern(g.Team) {
			continue
		}
		acc, ok := groups[g.Team]
		if !ok {
			acc = newAccumulator(fields)
			groups[g.Team] = acc
		}
		acc.add(g.Stats)
	}

	byName := indexTeams(directory)
	out := make([]TeamAverage, 0, len(groups))
	for _, team := range sortedKeys(groups) {
		avg := TeamAverage{Team: team, Stats: groups[team].line(bulkDecimals)}
		if t, ok := byName[team]; ok {
			abbr, div := t.Abbreviation, t.Division
			avg.Abbreviation = &abbr
			avg.Division = &div
		}
		out = append(out, avg)
	}
	return out
}

func indexTeams(directory []teams.Team) map[string]teams.Team {
	byName := make(map[string]teams.Team, len(directory))
	for _, t := range directory {
		if !t.HasFullName() {
			continue
		}
		if _, dup := byName[t.FullName]; !dup {
			byName[t.FullName] = t
		}
	}
	return byName
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
