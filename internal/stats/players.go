package stats

import (
	"strings"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/boxscores"
)

// PlayerAverage is the per-game average of one player across all box scores.
type PlayerAverage struct {
	Player string
	Stats  Line
}

func (a PlayerAverage) MarshalJSON() ([]byte, error) {
	o := newObject()
	o.field("Player", a.Player)
	o.stats(a.Stats)
	return o.bytes()
}

// PlayerPerGame is a single player's per-game line, labelled with the requested name.
type PlayerPerGame struct {
	FullName string
	Stats    Line
}

func (p PlayerPerGame) MarshalJSON() ([]byte, error) {
	o := newObject()
	o.stats(p.Stats)
	o.field("FullName", p.FullName)
	return o.bytes()
}

// PlayerAverages groups player games by the exact player key and averages every
// player field present in the table. Rows without a name are skipped.
func PlayerAverages(games boxscores.PlayerGames) []PlayerAverage {
	fields := games.Columns.Stats.Select(boxscores.PlayerFields)
	groups := make(map[string]*accumulator)
	for _, g := range games.Rows {
		if strings.TrimSpace(g.Player) == "" {
			continue
		}
		acc, ok := groups[g.Player]
		if !ok {
			acc = newAccumulator(fields)
			groups[g.Player] = acc
		}
		acc.add(g.Stats)
	}

	out := make([]PlayerAverage, 0, len(groups))
	for _, player := range sortedKeys(groups) {
		out = append(out, PlayerAverage{Player: player, Stats: groups[player].line(bulkDecimals)})
	}
	return out
}

// PlayerPerGameAverage averages every game whose player key matches name, ignoring
// case and surrounding space. ok is false when no game matches.
func PlayerPerGameAverage(games boxscores.PlayerGames, name string) (PlayerPerGame, bool) {
	if strings.TrimSpace(name) == "" {
		return PlayerPerGame{}, false
	}
	acc := newAccumulator(games.Columns.Stats.Select(boxscores.PlayerFields))
	matched := 0
	for _, g := range games.Rows {
		if !boxscores.SamePlayer(g.Player, name) {
			continue
		}
		acc.add(g.Stats)
		matched++
	}
	if matched == 0 {
		return PlayerPerGame{}, false
	}
	return PlayerPerGame{FullName: name, Stats: acc.line(perGameDecimals)}, true
}
