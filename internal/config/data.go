package config

// DataConfig locates the CSV reference files loaded at startup.
type DataConfig struct {
	Dir             string `validate:"required"`
	PlayersFile     string `validate:"required"`
	TeamsFile       string `validate:"required"`
	TeamStatsFile   string `validate:"required"`
	PlayerStatsFile string `validate:"required"`
}

func loadData() DataConfig {
	return DataConfig{
		Dir:             envOrDefault(envDataDir, defaultDataDir),
		PlayersFile:     envOrDefault(envPlayersFile, defaultPlayersFile),
		TeamsFile:       envOrDefault(envTeamsFile, defaultTeamsFile),
		TeamStatsFile:   envOrDefault(envTeamStatsFile, defaultTeamStatsFile),
		PlayerStatsFile: envOrDefault(envPlayerStatsFile, defaultPlayerStatsFile),
	}
}
