package store

import (
	"github.com/preston-bernstein/nba-stats-service/internal/dataset"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-stats-service/internal/franchise"
)

// MemoryStore is the read-only view of the loaded tables. It is built once and never
// mutated, so it is safe to share between requests without locking.
type MemoryStore struct {
	players     []players.Player
	teams       []teams.Team
	teamsByID   map[string]teams.Team
	teamGames   boxscores.TeamGames
	playerGames boxscores.PlayerGames
}

// NewMemoryStore normalizes team box scores to modern franchises and indexes the tables.
func NewMemoryStore(tables dataset.Tables) *MemoryStore {
	s := &MemoryStore{
		players:     tables.Players,
		teams:       tables.Teams,
		teamsByID:   make(map[string]teams.Team, len(tables.Teams)),
		teamGames:   franchise.Normalize(tables.TeamGames),
		playerGames: tables.PlayerGames,
	}
	for _, t := range tables.Teams {
		if _, dup := s.teamsByID[t.ID]; !dup {
			s.teamsByID[t.ID] = t
		}
	}
	return s
}

// ListPlayers returns a copy of the players table.
func (s *MemoryStore) ListPlayers() []players.Player {
	result := make([]players.Player, len(s.players))
	copy(result, s.players)
	return result
}

// ListTeams returns a copy of the teams table.
func (s *MemoryStore) ListTeams() []teams.Team {
	result := make([]teams.Team, len(s.teams))
	copy(result, s.teams)
	return result
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id string) (teams.Team, bool) {
	t, ok := s.teamsByID[id]
	return t, ok
}

// TeamGames returns the normalized team box scores. Callers must not modify the rows.
func (s *MemoryStore) TeamGames() boxscores.TeamGames {
	return s.teamGames
}

// PlayerGames returns the player box scores. Callers must not modify the rows.
func (s *MemoryStore) PlayerGames() boxscores.PlayerGames {
	return s.playerGames
}
