package testutil

import (
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/app/players"
	"github.com/preston-bernstein/nba-stats-service/internal/app/teams"
	"github.com/preston-bernstein/nba-stats-service/internal/dataset"
	"github.com/preston-bernstein/nba-stats-service/internal/store"
)

// FixtureNow is the clock used for player ages in fixture-backed services.
var FixtureNow = MustParseRFC3339("2024-06-01T12:00:00Z")

// NewStore loads the fixture tables into a read-only store.
func NewStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	tables, err := dataset.Load(DataFS(), DataFiles, nil, nil)
	if err != nil {
		t.Fatalf("failed to load fixture dataset: %v", err)
	}
	return store.NewMemoryStore(tables)
}

// NewServices builds player and team services over the fixture dataset.
func NewServices(t *testing.T) (*players.Service, *teams.Service) {
	t.Helper()
	ms := NewStore(t)
	return players.NewService(ms, nil, NowAt(FixtureNow)), teams.NewService(ms, nil)
}
