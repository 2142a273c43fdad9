// Package dataset loads the reference CSV tables into typed records.
package dataset

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// ErrTableUnavailable marks a source file that is missing, empty or not valid CSV.
var ErrTableUnavailable = errors.New("table unavailable")

// Table names used in logs, metrics and errors.
const (
	TablePlayers     = "players"
	TableTeams       = "teams"
	TableTeamStats   = "team_stats"
	TablePlayerStats = "player_stats"
)

// Files names the four source tables relative to the data directory.
type Files struct {
	Players     string
	Teams       string
	TeamStats   string
	PlayerStats string
}

// Tables holds everything read at startup.
type Tables struct {
	Players     []players.Player
	Teams       []teams.Team
	TeamGames   boxscores.TeamGames
	PlayerGames boxscores.PlayerGames
}

// Recorder observes per-table load results.
type Recorder interface {
	RecordDatasetLoad(table string, rows int, dur time.Duration, err error)
}

// LoadDir reads the tables from a directory on disk.
func LoadDir(dir string, files Files, logger *slog.Logger, recorder Recorder) (Tables, error) {
	return Load(os.DirFS(dir), files, logger, recorder)
}

// Load reads and parses all four tables. Any table that cannot be read fails the whole
// load with an error wrapping ErrTableUnavailable.
func Load(fsys fs.FS, files Files, logger *slog.Logger, recorder Recorder) (Tables, error) {
	var out Tables

	teamTable, err := read(fsys, TableTeams, files.Teams, logger, recorder)
	if err != nil {
		return Tables{}, err
	}
	out.Teams = parseTeams(teamTable)

	playerTable, err := read(fsys, TablePlayers, files.Players, logger, recorder)
	if err != nil {
		return Tables{}, err
	}
	out.Players = joinTeams(parsePlayers(playerTable), out.Teams)

	teamStats, err := read(fsys, TableTeamStats, files.TeamStats, logger, recorder)
	if err != nil {
		return Tables{}, err
	}
	out.TeamGames = parseTeamGames(teamStats)

	playerStats, err := read(fsys, TablePlayerStats, files.PlayerStats, logger, recorder)
	if err != nil {
		return Tables{}, err
	}
	out.PlayerGames = parsePlayerGames(playerStats)

	return out, nil
}

func read(fsys fs.FS, name, file string, logger *slog.Logger, recorder Recorder) (*table, error) {
	start := time.Now()
	t, err := readTable(fsys, name, file)
	dur := time.Since(start)

	rows := 0
	if t != nil {
		rows = len(t.rows)
	}
	if recorder != nil {
		recorder.RecordDatasetLoad(name, rows, dur, err)
	}
	if err != nil {
		logging.Error(logger, "dataset table load failed", err,
			logging.FieldTable, name,
			logging.FieldFile, file,
		)
		return nil, err
	}
	logging.Info(logger, "dataset table loaded",
		logging.FieldTable, name,
		logging.FieldFile, file,
		logging.FieldCount, rows,
		logging.FieldDurationMS, dur.Milliseconds(),
	)
	return t, nil
}
