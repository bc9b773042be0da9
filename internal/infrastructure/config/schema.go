package config

// Config represents the complete configuration for focusmode.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
	// Focus controls how focus mode hooks into pages.
	Focus FocusConfig `mapstructure:"focus" toml:"focus"`
	// Window sets the initial size of the browse window.
	Window WindowConfig `mapstructure:"window" toml:"window"`
}

// DatabaseConfig holds the settings store location.
type DatabaseConfig struct {
	// Path to the SQLite database; empty means $XDG_DATA_HOME/focusmode/focusmode.sqlite.
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
	// LogDir receives log files while a terminal surface owns the screen;
	// empty means $XDG_STATE_HOME/focusmode/logs.
	LogDir     string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
}

// FocusConfig holds page integration settings.
type FocusConfig struct {
	// ToggleKey toggles focus mode on any focus page (e.g. "alt+f").
	ToggleKey string `mapstructure:"toggle_key" toml:"toggle_key"`
	// ExitKey leaves focus mode; ignored while inactive.
	ExitKey string `mapstructure:"exit_key" toml:"exit_key"`
	// ContentParam is the query parameter identifying the current content.
	ContentParam string `mapstructure:"content_param" toml:"content_param"`
	// MatchURL is the substring a page URL must contain to get focus mode.
	MatchURL string `mapstructure:"match_url" toml:"match_url"`
	// FocusClass is the root class applied while focus mode is active.
	FocusClass string `mapstructure:"focus_class" toml:"focus_class"`
	// NoScrollClass is the root class applied while scrolling is blocked.
	NoScrollClass string `mapstructure:"no_scroll_class" toml:"no_scroll_class"`
	// VideoSelector locates the media element on the page.
	VideoSelector string `mapstructure:"video_selector" toml:"video_selector"`
}

// WindowConfig holds window geometry.
type WindowConfig struct {
	Width  int `mapstructure:"width" toml:"width"`
	Height int `mapstructure:"height" toml:"height"`
}
