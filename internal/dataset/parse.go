package dataset

import (
	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
)

var (
	colPlayerID    = []string{"Id", "PersonId"}
	colFirstName   = []string{"FirstName"}
	colLastName    = []string{"LastName"}
	colFullName    = []string{"FullName"}
	colDateOfBirth = []string{"DateOfBirth"}
	colTeamID      = []string{"TeamId"}
	colSchool      = []string{"School"}

	colTeamKey     = []string{"Id", "TeamId"}
	colCity        = []string{"City"}
	colNickname    = []string{"Nickname"}
	colAbbrev      = []string{"Abbreviation"}
	colDivision    = []string{"Division"}
	colYearFounded = []string{"YearFounded"}

	colTeamCity = []string{"teamCity"}
	colTeamName = []string{"teamName"}
	colSeason   = []string{"season"}
	colGameDate = []string{"gameDate", "gameDateTimeEst"}
	colPersonID = []string{"personId"}
)

func parseTeams(t *table) []teams.Team {
	named := t.has(colCity...) && t.has(colNickname...)
	out := make([]teams.Team, 0, len(t.rows))
	t.each(func(r row) {
		team := teams.Team{
			ID:           r.str(colTeamKey...),
			City:         r.str(colCity...),
			Nickname:     r.str(colNickname...),
			Abbreviation: r.str(colAbbrev...),
			Division:     r.str(colDivision...),
		}
		if named {
			team.FullName = teams.FullName(team.City, team.Nickname)
		}
		team.YearFounded, _ = r.integer(colYearFounded...)
		out = append(out, team)
	})
	return out
}

func parsePlayers(t *table) []players.Player {
	named := t.has(colFirstName...) && t.has(colLastName...)
	out := make([]players.Player, 0, len(t.rows))
	t.each(func(r row) {
		p := players.Player{
			ID:        r.str(colPlayerID...),
			FirstName: r.str(colFirstName...),
			LastName:  r.str(colLastName...),
			TeamID:    r.optStr(colTeamID...),
			School:    r.optStr(colSchool...),
		}
		if named {
			p.FullName = players.FullName(p.FirstName, p.LastName)
		}
		p.DateOfBirth, _ = r.date(colDateOfBirth...)
		out = append(out, p)
	})
	return out
}

// joinTeams attaches each player's team full name by team id. Players whose team is
// unknown or unnamed keep a nil TeamName.
func joinTeams(ps []players.Player, ts []teams.Team) []players.Player {
	byID := make(map[string]string, len(ts))
	for _, t := range ts {
		if t.ID == "" || !t.HasFullName() {
			continue
		}
		if _, dup := byID[t.ID]; !dup {
			byID[t.ID] = t.FullName
		}
	}
	for i := range ps {
		if ps[i].TeamID == nil {
			continue
		}
		if name, ok := byID[*ps[i].TeamID]; ok {
			ps[i].TeamName = &name
		}
	}
	return ps
}

type statColumn struct {
	field boxscores.Field
	index int
}

// statColumns resolves the stat fields present in the header, in the order given.
func statColumns(t *table, fields []boxscores.Field) ([]statColumn, boxscores.FieldSet) {
	present := make(map[boxscores.Field]int, len(t.header))
	for key, i := range t.header {
		if f, ok := boxscores.FieldByKey(key); ok {
			present[f] = i
		}
	}

	var (
		cols []statColumn
		set  boxscores.FieldSet
	)
	for _, f := range fields {
		if i, ok := present[f]; ok {
			cols = append(cols, statColumn{field: f, index: i})
			set = set.With(f)
		}
	}
	return cols, set
}

func statLine(r row, cols []statColumn) boxscores.Line {
	var line boxscores.Line
	for _, c := range cols {
		if v, ok := r.floatAt(c.index); ok {
			line.Set(c.field, v)
		}
	}
	return line
}

func parseTeamGames(t *table) boxscores.TeamGames {
	cols, set := statColumns(t, boxscores.TeamFields)
	out := boxscores.TeamGames{
		Rows: make([]boxscores.TeamGame, 0, len(t.rows)),
		Columns: boxscores.Columns{
			Stats:    set,
			Season:   t.has(colSeason...),
			GameDate: t.has(colGameDate...),
		},
	}
	t.each(func(r row) {
		g := boxscores.TeamGame{
			TeamCity: r.str(colTeamCity...),
			TeamName: r.str(colTeamName...),
			Stats:    statLine(r, cols),
		}
		if season, ok := r.integer(colSeason...); ok {
			g.Season = season
		} else {
			g.SeasonLabel = r.str(colSeason...)
		}
		g.GameDate, _ = r.date(colGameDate...)
		out.Rows = append(out.Rows, g)
	})
	return out
}

func parsePlayerGames(t *table) boxscores.PlayerGames {
	cols, set := statColumns(t, boxscores.PlayerFields)
	named := t.has(colFirstName...) && t.has(colLastName...)
	out := boxscores.PlayerGames{
		Rows: make([]boxscores.PlayerGame, 0, len(t.rows)),
		Columns: boxscores.Columns{
			Stats:    set,
			Season:   t.has(colSeason...),
			GameDate: t.has(colGameDate...),
		},
	}
	t.each(func(r row) {
		g := boxscores.PlayerGame{
			PersonID:  r.str(colPersonID...),
			FirstName: r.str(colFirstName...),
			LastName:  r.str(colLastName...),
			Stats:     statLine(r, cols),
		}
		if named {
			g.Player = boxscores.PlayerKey(g.FirstName, g.LastName)
		} else {
			g.Player = r.str(colFullName...)
		}
		g.Season, _ = r.integer(colSeason...)
		g.GameDate, _ = r.date(colGameDate...)
		out.Rows = append(out.Rows, g)
	})
	return out
}
