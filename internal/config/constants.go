package config

const (
	envPort            = "PORT"
	envDataDir         = "DATA_DIR"
	envPlayersFile     = "PLAYERS_FILE"
	envTeamsFile       = "TEAMS_FILE"
	envTeamStatsFile   = "TEAM_STATS_FILE"
	envPlayerStatsFile = "PLAYER_STATS_FILE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort            = "4000"
	defaultDataDir         = "data"
	defaultPlayersFile     = "players.csv"
	defaultTeamsFile       = "teams.csv"
	defaultTeamStatsFile   = "TeamStatistics.csv"
	defaultPlayerStatsFile = "PlayerStatistics.csv"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "nba-stats-service"
)
