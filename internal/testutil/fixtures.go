package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/preston-bernstein/nba-stats-service/internal/dataset"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
)

// DataFiles names the fixture tables the way the default config does.
var DataFiles = dataset.Files{
	Players:     "players.csv",
	Teams:       "teams.csv",
	TeamStats:   "TeamStatistics.csv",
	PlayerStats: "PlayerStatistics.csv",
}

const (
	PlayersCSV = `PersonId,FirstName,LastName,DateOfBirth,TeamId,School
2544,LeBron,James,1984-12-30,1610612747,St. Vincent-St. Mary HS
201142,Kevin,Durant,1988-09-29,1610612760,Texas
1628369,Jayson,Tatum,1998-03-03,1610612738,Duke
999,Free,Agent,,,
`
	TeamsCSV = `TeamId,City,Nickname,Abbreviation,Division,YearFounded
1610612760,Oklahoma City,Thunder,OKC,Northwest,1967
1610612738,Boston,Celtics,BOS,Atlantic,1946
1610612747,Los Angeles,Lakers,LAL,Pacific,1947
`
	TeamStatsCSV = `gameDate,teamCity,teamName,assists,steals,fieldGoalsPercentage,teamScore,opponentScore
2008-01-02 19:00:00,Seattle,SuperSonics,10,8,0.45,101,99
2008-03-02 19:00:00,Seattle,SuperSonics,20,6,0.47,97,103
2009-01-02 19:00:00,Oklahoma City,Thunder,24,,0.5,110,100
2009-01-02 19:00:00,Boston,Celtics,25,9,48.5,100,110
1950-01-01,Anderson,Packers,30,5,0.3,80,75
`
	PlayerStatsCSV = `gameDate,personId,firstName,lastName,points,assists,fieldGoalsPercentage
2024-01-02 19:00:00,2544,LeBron,James,30,8,0.5
2024-01-04 19:00:00,2544,LeBron,James,25,,0.6
2024-01-04 19:00:00,201142,Kevin,Durant,28,5,0.52
`
)

// DataFS returns the fixture tables as an in-memory filesystem.
func DataFS() fstest.MapFS {
	return fstest.MapFS{
		DataFiles.Players:     {Data: []byte(PlayersCSV)},
		DataFiles.Teams:       {Data: []byte(TeamsCSV)},
		DataFiles.TeamStats:   {Data: []byte(TeamStatsCSV)},
		DataFiles.PlayerStats: {Data: []byte(PlayerStatsCSV)},
	}
}

// WriteDataDir writes the fixture tables to a temp dir and returns its path.
func WriteDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, file := range DataFS() {
		if err := os.WriteFile(filepath.Join(dir, name), file.Data, 0o644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}
	return dir
}

// SampleTeam returns the Boston row of TeamsCSV under the provided id.
func SampleTeam(id string) teams.Team {
	founded := 1946
	return teams.Team{
		ID:           id,
		City:         "Boston",
		Nickname:     "Celtics",
		FullName:     teams.FullName("Boston", "Celtics"),
		Abbreviation: "BOS",
		Division:     "Atlantic",
		YearFounded:  &founded,
	}
}
