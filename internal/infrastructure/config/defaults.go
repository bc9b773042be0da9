package config

const (
	defaultWindowWidth  = 1280 // px
	defaultWindowHeight = 800  // px

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			// Path is resolved in Load()
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Focus: FocusConfig{
			ToggleKey:     "alt+f",
			ExitKey:       "escape",
			ContentParam:  "v",
			MatchURL:      "youtube.com/watch",
			FocusClass:    "uw-focus-mode",
			NoScrollClass: "uw-no-scroll",
			VideoSelector: "video",
		},
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
	}
}
