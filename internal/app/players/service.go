package players

import (
	"sort"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/stats"
)

// Aggregation operation labels.
const (
	OpAverages = "player_averages"
	OpPerGame  = "player_per_game"
)

// Store defines the read-only data the service queries.
type Store interface {
	ListPlayers() []players.Player
	PlayerGames() boxscores.PlayerGames
}

// Recorder observes aggregation durations.
type Recorder interface {
	RecordAggregation(operation string, duration time.Duration)
}

// Service answers player queries over a Store.
type Service struct {
	store    Store
	recorder Recorder
	now      func() time.Time
	names    []string
	averages []stats.PlayerAverage
}

// NewService precomputes the bulk player averages and name list. now defaults to time.Now.
func NewService(store Store, recorder Recorder, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	s := &Service{store: store, recorder: recorder, now: now}
	s.names = uniqueNames(store.ListPlayers())

	start := time.Now()
	s.averages = stats.PlayerAverages(store.PlayerGames())
	s.record(OpAverages, time.Since(start))
	return s
}

// Players returns every player with age computed at the current time.
func (s *Service) Players() []players.Record {
	now := s.now()
	list := s.store.ListPlayers()
	out := make([]players.Record, 0, len(list))
	for _, p := range list {
		out = append(out, p.Record(now))
	}
	return out
}

// Names returns the sorted, distinct, non-empty player full names.
func (s *Service) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Averages returns the per-player averages computed at startup.
func (s *Service) Averages() []stats.PlayerAverage {
	return s.averages
}

// PerGame averages one player's box scores. ok is false when the player has none.
func (s *Service) PerGame(name string) (stats.PlayerPerGame, bool) {
	start := time.Now()
	out, ok := stats.PlayerPerGameAverage(s.store.PlayerGames(), name)
	s.record(OpPerGame, time.Since(start))
	return out, ok
}

func (s *Service) record(op string, d time.Duration) {
	if s.recorder != nil {
		s.recorder.RecordAggregation(op, d)
	}
}

func uniqueNames(list []players.Player) []string {
	seen := make(map[string]struct{}, len(list))
	names := make([]string, 0, len(list))
	for _, p := range list {
		if strings.TrimSpace(p.FullName) == "" {
			continue
		}
		if _, dup := seen[p.FullName]; dup {
			continue
		}
		seen[p.FullName] = struct{}{}
		names = append(names, p.FullName)
	}
	sort.Strings(names)
	return names
}
