package stats

import (
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-stats-service/internal/franchise"
)

func teamGame(city, name string, stats map[boxscores.Field]float64) boxscores.TeamGame {
	return boxscores.TeamGame{
		TeamCity: city,
		TeamName: name,
		Stats:    boxscores.LineOf(stats),
	}
}

func withSeason(g boxscores.TeamGame, season int) boxscores.TeamGame {
	g.Season = &season
	return g
}

func withDate(g boxscores.TeamGame, date time.Time) boxscores.TeamGame {
	g.GameDate = &date
	return g
}

func normalized(cols boxscores.Columns, rows ...boxscores.TeamGame) boxscores.TeamGames {
	return franchise.Normalize(boxscores.TeamGames{Rows: rows, Columns: cols})
}

func playerGame(first, last string, stats map[boxscores.Field]float64) boxscores.PlayerGame {
	return boxscores.PlayerGame{
		FirstName: first,
		LastName:  last,
		Player:    boxscores.PlayerKey(first, last),
		Stats:     boxscores.LineOf(stats),
	}
}

func allTeamColumns() boxscores.Columns {
	return boxscores.Columns{Stats: boxscores.NewFieldSet(boxscores.TeamFields...)}
}

func allPlayerColumns() boxscores.Columns {
	return boxscores.Columns{Stats: boxscores.NewFieldSet(boxscores.PlayerFields...)}
}
