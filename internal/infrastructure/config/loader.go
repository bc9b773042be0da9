// Package config loads focusmode's TOML configuration through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading
// $XDG_CONFIG_HOME/focusmode/config.toml with FOCUSMODE_* overrides.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// FOCUSMODE_FOCUS_TOGGLE_KEY, FOCUSMODE_DATABASE_PATH, ...
	v.SetEnvPrefix("FOCUSMODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "FOCUSMODE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FOCUSMODE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FOCUSMODE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FOCUSMODE_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load reads the config file, creating it with defaults on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decode()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config: %w", createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, normalizes and validates viper's current state.
// Must be called with m.mu held for write.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", m.viper.ConfigFileUsed(), err)
	}

	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}

	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	case "", "text", "console":
		config.Logging.Format = "console"
	}

	config.Focus.ToggleKey = normalizeChord(config.Focus.ToggleKey)
	config.Focus.ExitKey = normalizeChord(config.Focus.ExitKey)
	config.Focus.ContentParam = strings.TrimSpace(config.Focus.ContentParam)
	config.Focus.MatchURL = strings.TrimSpace(config.Focus.MatchURL)
	config.Focus.FocusClass = strings.TrimPrefix(strings.TrimSpace(config.Focus.FocusClass), ".")
	config.Focus.NoScrollClass = strings.TrimPrefix(strings.TrimSpace(config.Focus.NoScrollClass), ".")
}

func normalizeChord(chord string) string {
	parts := strings.Split(strings.ToLower(chord), "+")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, "+")
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path of the config file in use.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("focus.toggle_key", defaults.Focus.ToggleKey)
	m.viper.SetDefault("focus.exit_key", defaults.Focus.ExitKey)
	m.viper.SetDefault("focus.content_param", defaults.Focus.ContentParam)
	m.viper.SetDefault("focus.match_url", defaults.Focus.MatchURL)
	m.viper.SetDefault("focus.focus_class", defaults.Focus.FocusClass)
	m.viper.SetDefault("focus.no_scroll_class", defaults.Focus.NoScrollClass)
	m.viper.SetDefault("focus.video_selector", defaults.Focus.VideoSelector)

	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
}
