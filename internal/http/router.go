package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/nba-stats-service/internal/http/handlers"
)

// NewRouter registers the HTTP routes. Paths are matched in their encoded form and the
// handlers decode path parameters themselves.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	r := mux.NewRouter().UseEncodedPath()
	r.NotFoundHandler = nethttp.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(h.MethodNotAllowed)

	r.HandleFunc("/health", h.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", h.Ready).Methods(nethttp.MethodGet)

	r.HandleFunc("/api/players", h.Players).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/player-names", h.PlayerNames).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/teams", h.Teams).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/teams/{"+handlers.VarID+"}", h.TeamByID).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/teams/{"+handlers.VarTeam+"}/seasons", h.TeamSeasons).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/team_averages", h.TeamAverages).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/player_averages", h.PlayerAverages).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/player-averages/{"+handlers.VarName+"}", h.PlayerPerGame).Methods(nethttp.MethodGet)
	return r
}
