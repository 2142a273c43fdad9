package stats

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-stats-service/internal/franchise"
)

// Season identifies one group of a team's time series. Label holds season cells that
// are not a plain year, such as "2023-24"; Year is used otherwise.
type Season struct {
	Year  int
	Label string
}

func (s Season) String() string {
	if s.Label != "" {
		return s.Label
	}
	return strconv.Itoa(s.Year)
}

// MarshalJSON renders years as numbers and labels as strings.
func (s Season) MarshalJSON() ([]byte, error) {
	if s.Label != "" {
		return json.Marshal(s.Label)
	}
	return json.Marshal(s.Year)
}

func (s Season) less(o Season) bool {
	if s.Label == "" && o.Label == "" {
		return s.Year < o.Year
	}
	return s.String() < o.String()
}

// SeasonAverage is one season of a team's time series.
type SeasonAverage struct {
	Season Season
	Team   string
	Stats  Line
}

func (s SeasonAverage) MarshalJSON() ([]byte, error) {
	o := newObject()
	o.field("season", s.Season)
	o.field("team", s.Team)
	o.stats(s.Stats)
	return o.bytes()
}

// SeasonStrategy derives the season a team game belongs to.
type SeasonStrategy struct {
	Name    string
	Applies func(boxscores.Columns) bool
	Season  func(boxscores.TeamGame) (Season, bool)
}

// SeasonPolicy is evaluated in order against the table's columns; the first strategy
// that applies is used for every row.
var SeasonPolicy = []SeasonStrategy{
	{
		Name:    "season column",
		Applies: func(c boxscores.Columns) bool { return c.Season },
		Season: func(g boxscores.TeamGame) (Season, bool) {
			switch {
			case g.Season != nil:
				return Season{Year: *g.Season}, true
			case g.SeasonLabel != "":
				return Season{Label: g.SeasonLabel}, true
			default:
				return Season{}, false
			}
		},
	},
	{
		Name:    "game date year",
		Applies: func(c boxscores.Columns) bool { return c.GameDate },
		Season: func(g boxscores.TeamGame) (Season, bool) {
			if g.GameDate == nil {
				return Season{}, false
			}
			return Season{Year: g.GameDate.Year()}, true
		},
	},
	{
		Name:    "single season",
		Applies: func(boxscores.Columns) bool { return true },
		Season:  func(boxscores.TeamGame) (Season, bool) { return Season{}, true },
	},
}

// SelectSeasonStrategy returns the first strategy of SeasonPolicy that applies.
func SelectSeasonStrategy(cols boxscores.Columns) SeasonStrategy {
	for _, s := range SeasonPolicy {
		if s.Applies(cols) {
			return s
		}
	}
	return SeasonPolicy[len(SeasonPolicy)-1]
}

// TeamSeasons builds the per-season averages of one canonical team, ascending by
// season. Rows with a blank season cell or an unparseable game date are skipped; an
// unknown team yields an empty series.
func TeamSeasons(games boxscores.TeamGames, team string) []SeasonAverage {
	if !franchise.IsModern(team) {
		return []SeasonAverage{}
	}
	fields := games.Columns.Stats.Select(boxscores.TeamFields)
	strategy := SelectSeasonStrategy(games.Columns)
	groups := make(map[Season]*accumulator)
	for _, g := range games.Rows {
		if g.Team != team {
			continue
		}
		season, ok := strategy.Season(g)
		if !ok {
			continue
		}
		acc, exists := groups[season]
		if !exists {
			acc = newAccumulator(fields)
			groups[season] = acc
		}
		acc.add(g.Stats)
	}

	seasons := make([]Season, 0, len(groups))
	for season := range groups {
		seasons = append(seasons, season)
	}
	sort.Slice(seasons, func(i, j int) bool { return seasons[i].less(seasons[j]) })

	out := make([]SeasonAverage, 0, len(seasons))
	for _, season := range seasons {
		out = append(out, SeasonAverage{Season: season, Team: team, Stats: groups[season].line(bulkDecimals)})
	}
	return out
}
