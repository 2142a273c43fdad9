package teams

import (
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-service/internal/stats"
)

// Aggregation operation labels.
const (
	OpAverages = "team_averages"
	OpSeasons  = "team_seasons"
)

// Store defines the read-only data the service queries.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id string) (teams.Team, bool)
	TeamGames() boxscores.TeamGames
}

// Recorder observes aggregation durations.
type Recorder interface {
	RecordAggregation(operation string, duration time.Duration)
}

// Service answers team queries over a Store.
type Service struct {
	store    Store
	recorder Recorder
	averages []stats.TeamAverage
}

// NewService precomputes the bulk team averages.
func NewService(store Store, recorder Recorder) *Service {
	s := &Service{store: store, recorder: recorder}

	start := time.Now()
	s.averages = stats.TeamAverages(store.TeamGames(), store.ListTeams())
	s.record(OpAverages, time.Since(start))
	return s
}

// Teams returns the teams reference table.
func (s *Service) Teams() []teams.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id string) (teams.Team, bool) {
	return s.store.GetTeam(id)
}

// Averages returns the per-franchise averages computed at startup.
func (s *Service) Averages() []stats.TeamAverage {
	return s.averages
}

// Seasons returns the season-by-season averages of a canonical team. Unknown teams
// yield an empty series.
func (s *Service) Seasons(team string) []stats.SeasonAverage {
	start := time.Now()
	out := stats.TeamSeasons(s.store.TeamGames(), team)
	s.record(OpSeasons, time.Since(start))
	return out
}

func (s *Service) record(op string, d time.Duration) {
	if s.recorder != nil {
		s.recorder.RecordAggregation(op, d)
	}
}
