package dataset

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
)

var testFiles = Files{
	Players:     "players.csv",
	Teams:       "teams.csv",
	TeamStats:   "TeamStatistics.csv",
	PlayerStats: "PlayerStatistics.csv",
}

const (
	playersCSV = "\ufeffId,FirstName,LastName,DateOfBirth,TeamId,School\n" +
		"1,LeBron,James,1984-12-30,10,St. Vincent-St. Mary\n" +
		"2,Nikola,Jokic,1995-02-19 00:00:00,20,\n" +
		"3,Test,Player,not-a-date,99,Nowhere\n"
	teamsCSV = "TeamId,City,Nickname,Abbreviation,Division,YearFounded\n" +
		"10,Los Angeles,Lakers,LAL,Pacific,1947\n" +
		"20,Denver,Nuggets,DEN,Northwest,1967.0\n"
	teamStatsCSV = " TEAMCITY ,teamName,gameDateTimeEst,Assists,fieldGoalsPercentage,teamScore\n" +
		"Seattle,SuperSonics,2007-11-02T19:00:00Z,10,0.45,101\n" +
		"Seattle,SuperSonics,2008-01-05T19:00:00Z,20,,99\n" +
		"Boston,Celtics,2008-01-05T19:00:00Z,bad,0.5\n"
	playerStatsCSV = "personId,firstName,lastName,season,points,assists\n" +
		"1, LeBron ,James,2019,27,7\n" +
		"1,LeBron,James,2019.0,25,\n"
)

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		testFiles.Players:     {Data: []byte(playersCSV)},
		testFiles.Teams:       {Data: []byte(teamsCSV)},
		testFiles.TeamStats:   {Data: []byte(teamStatsCSV)},
		testFiles.PlayerStats: {Data: []byte(playerStatsCSV)},
	}
}

type loadRecord struct {
	table string
	rows  int
	err   error
}

type fakeRecorder struct {
	loads []loadRecord
}

func (f *fakeRecorder) RecordDatasetLoad(table string, rows int, _ time.Duration, err error) {
	f.loads = append(f.loads, loadRecord{table: table, rows: rows, err: err})
}

func TestLoadParsesAllTables(t *testing.T) {
	rec := &fakeRecorder{}
	tables, err := Load(fixtureFS(), testFiles, nil, rec)
	require.NoError(t, err)

	require.Len(t, tables.Teams, 2)
	lakers := tables.Teams[0]
	assert.Equal(t, "10", lakers.ID)
	assert.Equal(t, "Los Angeles Lakers", lakers.FullName)
	assert.Equal(t, "LAL", lakers.Abbreviation)
	require.NotNil(t, lakers.YearFounded)
	assert.Equal(t, 1947, *lakers.YearFounded)
	require.NotNil(t, tables.Teams[1].YearFounded)
	assert.Equal(t, 1967, *tables.Teams[1].YearFounded)

	require.Len(t, tables.Players, 3)
	lebron := tables.Players[0]
	assert.Equal(t, "1", lebron.ID)
	assert.Equal(t, "LeBron James", lebron.FullName)
	require.NotNil(t, lebron.DateOfBirth)
	assert.Equal(t, time.Date(1984, time.December, 30, 0, 0, 0, 0, time.UTC), *lebron.DateOfBirth)
	require.NotNil(t, lebron.TeamName)
	assert.Equal(t, "Los Angeles Lakers", *lebron.TeamName)
	require.NotNil(t, lebron.School)

	jokic := tables.Players[1]
	require.NotNil(t, jokic.DateOfBirth)
	assert.Nil(t, jokic.School)
	require.NotNil(t, jokic.TeamName)
	assert.Equal(t, "Denver Nuggets", *jokic.TeamName)

	unknown := tables.Players[2]
	assert.Nil(t, unknown.DateOfBirth)
	assert.Nil(t, unknown.TeamName)

	assert.Equal(t, []loadRecord{
		{table: TableTeams, rows: 2},
		{table: TablePlayers, rows: 3},
		{table: TableTeamStats, rows: 3},
		{table: TablePlayerStats, rows: 2},
	}, rec.loads)
}

func TestLoadTeamGames(t *testing.T) {
	tables, err := Load(fixtureFS(), testFiles, nil, nil)
	require.NoError(t, err)

	games := tables.TeamGames
	assert.False(t, games.Columns.Season)
	assert.True(t, games.Columns.GameDate)
	assert.True(t, games.Columns.Stats.Has(boxscores.Assists))
	assert.True(t, games.Columns.Stats.Has(boxscores.TeamScore))
	assert.False(t, games.Columns.Stats.Has(boxscores.Steals))

	require.Len(t, games.Rows, 3)
	first := games.Rows[0]
	assert.Equal(t, "Seattle", first.TeamCity)
	assert.Equal(t, "SuperSonics", first.TeamName)
	require.NotNil(t, first.GameDate)
	assert.Equal(t, 2007, first.GameDate.Year())
	v, ok := first.Stats.Get(boxscores.FieldGoalsPercentage)
	assert.True(t, ok)
	assert.Equal(t, 0.45, v)

	_, ok = games.Rows[1].Stats.Get(boxscores.FieldGoalsPercentage)
	assert.False(t, ok)

	celtics := games.Rows[2]
	_, ok = celtics.Stats.Get(boxscores.Assists)
	assert.False(t, ok, "unparseable cell is missing")
	_, ok = celtics.Stats.Get(boxscores.TeamScore)
	assert.False(t, ok, "short row is missing trailing cells")
}

func TestLoadPlayerGames(t *testing.T) {
	tables, err := Load(fixtureFS(), testFiles, nil, nil)
	require.NoError(t, err)

	games := tables.PlayerGames
	assert.True(t, games.Columns.Season)
	assert.False(t, games.Columns.Stats.Has(boxscores.Steals))
	require.Len(t, games.Rows, 2)
	for _, g := range games.Rows {
		assert.Equal(t, "LeBron James", g.Player)
		require.NotNil(t, g.Season)
		assert.Equal(t, 2019, *g.Season)
	}
	_, ok := games.Rows[1].Stats.Get(boxscores.Assists)
	assert.False(t, ok)
}

func TestLoadDegradesWithoutNameColumns(t *testing.T) {
	fsys := fixtureFS()
	fsys[testFiles.Players] = &fstest.MapFile{Data: []byte("Id,TeamId\n1,10\n")}
	fsys[testFiles.Teams] = &fstest.MapFile{Data: []byte("TeamId,Abbreviation\n10,LAL\n")}
	fsys[testFiles.PlayerStats] = &fstest.MapFile{Data: []byte("FullName,points\nMagic Johnson,19.5\n")}

	tables, err := Load(fsys, testFiles, nil, nil)
	require.NoError(t, err)

	require.Len(t, tables.Players, 1)
	assert.Equal(t, "", tables.Players[0].FullName)
	assert.Nil(t, tables.Players[0].DateOfBirth)
	assert.Nil(t, tables.Players[0].TeamName)
	assert.Equal(t, "", tables.Teams[0].FullName)
	require.Len(t, tables.PlayerGames.Rows, 1)
	assert.Equal(t, "Magic Johnson", tables.PlayerGames.Rows[0].Player)
}

func TestLoadFailsOnUnavailableTable(t *testing.T) {
	cases := map[string]func(fstest.MapFS){
		"missing file": func(fsys fstest.MapFS) { delete(fsys, testFiles.TeamStats) },
		"empty file":   func(fsys fstest.MapFS) { fsys[testFiles.Players] = &fstest.MapFile{} },
		"unreadable": func(fsys fstest.MapFS) {
			delete(fsys, testFiles.Teams)
			fsys[testFiles.Teams+"/nested.csv"] = &fstest.MapFile{Data: []byte("a\n")}
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			fsys := fixtureFS()
			mutate(fsys)
			rec := &fakeRecorder{}

			_, err := Load(fsys, testFiles, nil, rec)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTableUnavailable))
			require.NotEmpty(t, rec.loads)
			assert.Error(t, rec.loads[len(rec.loads)-1].err)
		})
	}
}

func TestLoadKeepsNonNumericSeasonLabels(t *testing.T) {
	fsys := fixtureFS()
	fsys[testFiles.TeamStats] = &fstest.MapFile{Data: []byte(
		"teamCity,teamName,season,assists\n" +
			"Denver,Nuggets,2023-24,30\n" +
			"Denver,Nuggets,2024,28\n" +
			"Denver,Nuggets,,26\n",
	)}

	tables, err := Load(fsys, testFiles, nil, nil)
	require.NoError(t, err)

	rows := tables.TeamGames.Rows
	require.Len(t, rows, 3)
	assert.Nil(t, rows[0].Season)
	assert.Equal(t, "2023-24", rows[0].SeasonLabel)
	require.NotNil(t, rows[1].Season)
	assert.Equal(t, 2024, *rows[1].Season)
	assert.Equal(t, "", rows[1].SeasonLabel)
	assert.Nil(t, rows[2].Season)
	assert.Equal(t, "", rows[2].SeasonLabel)
}

func TestLoadToleratesStrayQuotes(t *testing.T) {
	fsys := fixtureFS()
	fsys[testFiles.Players] = &fstest.MapFile{Data: []byte(
		"Id,FirstName,LastName,DateOfBirth,TeamId,School\n" +
			"7,Marvin,Williams,1986-06-19,10,Bremerton \"Knights\" HS\n" +
			"8,Jason,Terry,1977-09-15,20,\"Franklin, Seattle\"\n",
	)}

	tables, err := Load(fsys, testFiles, nil, nil)
	require.NoError(t, err)

	require.Len(t, tables.Players, 2)
	require.NotNil(t, tables.Players[0].School)
	assert.Equal(t, `Bremerton "Knights" HS`, *tables.Players[0].School)
	require.NotNil(t, tables.Players[1].School)
	assert.Equal(t, "Franklin, Seattle", *tables.Players[1].School)
}

func TestLoadDirMissingDirectory(t *testing.T) {
	_, err := LoadDir(t.TempDir()+"/nope", testFiles, nil, nil)
	assert.ErrorIs(t, err, ErrTableUnavailable)
}
