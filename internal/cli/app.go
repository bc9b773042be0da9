// Package cli wires the focusmode commands: configuration, logging, the
// settings store and the terminal control surface.
package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/focusmode/internal/app/focushost"
	"github.com/bnema/focusmode/internal/cli/styles"
	"github.com/bnema/focusmode/internal/domain/build"
	"github.com/bnema/focusmode/internal/domain/repository"
	"github.com/bnema/focusmode/internal/infrastructure/config"
	"github.com/bnema/focusmode/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/focusmode/internal/logging"
)

// AppOptions controls how NewApp sets up logging.
type AppOptions struct {
	// LogToFile sends logs to the rotated log file instead of stderr, for
	// commands whose terminal UI owns the screen.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	DB            *sqlite.LazyDB
	Settings      repository.FocusSettingsRepository

	// LogFile is the active log file, empty when logging to stderr.
	LogFile string

	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies. The database
// is opened on first use.
func NewApp(opts AppOptions) (*App, error) {
	mgr, cfg := loadConfig()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("FOCUSMODE_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{Level: logging.ParseLevel(logLevel), Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       opts.LogToFile,
			LogDir:        cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			WriteToStderr: !opts.LogToFile,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	logFile := ""
	if opts.LogToFile {
		logFile = logging.LogFilePath(cfg.Logging.LogDir)
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	logger.Debug().Str("db_path", cfg.Database.Path).Msg("settings store configured")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		DB:            db,
		Settings:      sqlite.NewLazyFocusSettingsRepository(db),
		LogFile:       logFile,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// Warm opens the settings store and checks the page assets concurrently, so
// a broken install fails before any window or TUI shows up.
func (a *App) Warm(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := a.DB.DB(gctx); err != nil {
			return fmt.Errorf("open settings store: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if _, _, err := focushost.PageAssets(a.Config.Focus); err != nil {
			return fmt.Errorf("build page script: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.DB != nil {
		err = a.DB.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// the defaults when the file cannot be read. The manager is nil in that case.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using default config\n", err)
		return nil, withDefaultPaths(config.DefaultConfig())
	}

	if err := mgr.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using default config\n", err)
		return nil, withDefaultPaths(config.DefaultConfig())
	}

	return mgr, mgr.Get()
}

func withDefaultPaths(cfg *config.Config) *config.Config {
	if path, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = path
	}
	if dir, err := config.GetLogDir(); err == nil {
		cfg.Logging.LogDir = dir
	}
	return cfg
}
