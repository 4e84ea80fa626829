package config

const (
	defaultDataDir        = "~/.local/share/stagehand/data"
	defaultLogDir         = "~/.local/share/stagehand/logs"
	defaultBind           = "127.0.0.1:7317"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultSchedulingMode = "fixed"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			Bind:    defaultBind,
		},
		Production: Production{
			TheaterRoles:   false,
			StageWorkflow:  true,
			SchedulingMode: defaultSchedulingMode,
		},
		Notifications: Notifications{
			RequestTimeoutSeconds: 10,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
