package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/focusmode/internal/domain/entity"
)

var cssIdentPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateFocus(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "console", "json", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxSizeMB <= 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups cannot be negative")
	}
	return validationErrors
}

func validateFocus(config *Config) []string {
	var validationErrors []string
	f := config.Focus

	for _, k := range []struct{ name, chord string }{
		{"focus.toggle_key", f.ToggleKey},
		{"focus.exit_key", f.ExitKey},
	} {
		if _, ok := entity.ParseKeyChord(k.chord); !ok {
			validationErrors = append(validationErrors, fmt.Sprintf("%s is not a valid key chord (got: %q)", k.name, k.chord))
		}
	}

	for _, c := range []struct{ name, class string }{
		{"focus.focus_class", f.FocusClass},
		{"focus.no_scroll_class", f.NoScrollClass},
	} {
		if !cssIdentPattern.MatchString(c.class) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be a CSS class name (got: %q)", c.name, c.class))
		}
	}
	if f.FocusClass != "" && f.FocusClass == f.NoScrollClass {
		validationErrors = append(validationErrors, "focus.focus_class and focus.no_scroll_class must differ")
	}

	if f.ContentParam == "" {
		validationErrors = append(validationErrors, "focus.content_param cannot be empty")
	}
	if f.MatchURL == "" {
		validationErrors = append(validationErrors, "focus.match_url cannot be empty")
	}
	if f.VideoSelector == "" {
		validationErrors = append(validationErrors, "focus.video_selector cannot be empty")
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		return []string{fmt.Sprintf("window size must be positive (got: %dx%d)", config.Window.Width, config.Window.Height)}
	}
	return nil
}
