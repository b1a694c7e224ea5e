package config

const (
	defaultLogDir               = "~/.local/share/shotlog/logs"
	defaultCatalogPath          = "~/.local/share/shotlog/catalog.db"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultPlayerRequestTimeout = 2
	defaultNotifyRequestTimeout = 10
	defaultShotType             = "N/A"
)

func defaultShotTypes() []string {
	return []string{"WS", "MS", "CU", "ECU", "OTS", "POV", "INSERT"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:      defaultLogDir,
			CatalogPath: defaultCatalogPath,
		},
		Player: Player{
			RequestTimeout: defaultPlayerRequestTimeout,
		},
		Annotations: Annotations{
			DefaultShotType: defaultShotType,
			ShotTypes:       defaultShotTypes(),
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyRequestTimeout,
			Saves:          true,
			Errors:         true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
