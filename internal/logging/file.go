package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// FileConfig controls file output for NewWithFile.
type FileConfig struct {
	Enabled bool
	LogDir  string
	// MaxSizeMB and MaxBackups bound the rotated files.
	MaxSizeMB  int
	MaxBackups int
	// WriteToStderr keeps console output alongside the file.
	WriteToStderr bool
}

// NewWithFile creates a logger that writes to a rotated file and, optionally,
// stderr. The cleanup func closes the file.
func NewWithFile(cfg Config, file FileConfig) (zerolog.Logger, func(), error) {
	if !file.Enabled {
		if !file.WriteToStderr {
			cfg.Output = io.Discard
		}
		return New(cfg), func() {}, nil
	}

	rotator, err := NewLogRotator(file.LogDir, file.MaxSizeMB, file.MaxBackups)
	if err != nil {
		return New(cfg), func() {}, err
	}

	var fileOut io.Writer = rotator
	if cfg.Format == "console" {
		fileOut = zerolog.ConsoleWriter{Out: rotator, TimeFormat: cfg.TimeFormat, NoColor: true}
	}

	outputs := []io.Writer{fileOut}
	if file.WriteToStderr {
		var stderr io.Writer = os.Stderr
		if cfg.Format == "console" {
			stderr = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
		}
		outputs = append(outputs, stderr)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(outputs...)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		_ = rotator.Close()
	}
	return logger, cleanup, nil
}
