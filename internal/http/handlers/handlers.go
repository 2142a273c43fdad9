package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/nba-stats-service/internal/app/players"
	"github.com/preston-bernstein/nba-stats-service/internal/app/teams"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// Path parameter names shared with the router.
const (
	VarName = "name"
	VarTeam = "team"
	VarID   = "id"
)

// Handler wires HTTP routes to the player and team services.
type Handler struct {
	players *players.Service
	teams   *teams.Service
	logger  *slog.Logger
}

// NewHandler constructs a Handler. Both services are built from the loaded dataset, so a
// Handler with nil services reports not ready.
func NewHandler(playerSvc *players.Service, teamSvc *teams.Service, logger *slog.Logger) *Handler {
	return &Handler{
		players: playerSvc,
		teams:   teamSvc,
		logger:  logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic once the dataset is loaded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if h.players == nil || h.teams == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dataset not loaded", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Players lists every player with derived full name, age and team.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.loaded(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.players.Players(), h.logger)
}

// PlayerNames lists the distinct player names in sorted order.
func (h *Handler) PlayerNames(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.loaded(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.players.Names(), h.logger)
}

// Teams lists the teams reference table.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.loaded(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.teams.Teams(), h.logger)
}

// TeamByID returns a single row of the teams table.
func (h *Handler) TeamByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.loaded(w, r) {
		return
	}
	id, ok := pathVar(r, VarID)
	if !ok || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	team, found := h.teams.TeamByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

// TeamAverages returns the per-franchise averages computed at startup.
func (h *Handler) TeamAverages(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.loaded(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.teams.Averages(), h.logger)
}

// PlayerAverages returns the per-player averages computed at startup.
func (h *Handler) PlayerAverages(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.loaded(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.players.Averages(), h.logger)
}

// PlayerPerGame returns one player's per-game averages, matched case-insensitively.
func (h *Handler) PlayerPerGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.loaded(w, r) {
		return
	}
	name, ok := pathVar(r, VarName)
	if !ok || strings.TrimSpace(name) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player name", h.logger)
		return
	}
	out, found := h.players.PerGame(name)
	if !found {
		logging.Info(loggerFromContext(r, h.logger), "player lookup missed", logging.FieldPlayer, name)
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

// TeamSeasons returns a franchise's per-season averages, ascending by season.
func (h *Handler) TeamSeasons(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) || !h.loaded(w, r) {
		return
	}
	team, ok := pathVar(r, VarTeam)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team", h.logger)
		return
	}
	series := h.teams.Seasons(team)
	logging.Info(loggerFromContext(r, h.logger), "served team seasons",
		logging.FieldTeam, team,
		logging.FieldCount, len(series),
	)
	writeJSON(w, nethttp.StatusOK, series, h.logger)
}

// NotFound answers requests that match no route.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers requests to a known path with an unsupported method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) allowGet(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if r.Method != nethttp.MethodGet {
		h.MethodNotAllowed(w, r)
		return false
	}
	return true
}

func (h *Handler) loaded(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if h.players == nil || h.teams == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "dataset not loaded", h.logger)
		return false
	}
	return true
}

// pathVar returns the URL-decoded path parameter. The router keeps paths encoded so
// names containing "/" or spaces survive matching.
func pathVar(r *nethttp.Request, key string) (string, bool) {
	raw, ok := mux.Vars(r)[key]
	if !ok {
		return "", false
	}
	v, err := url.PathUnescape(raw)
	if err != nil {
		return "", false
	}
	return v, true
}
