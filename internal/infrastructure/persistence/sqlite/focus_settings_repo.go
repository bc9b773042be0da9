package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/domain/repository"
	"github.com/bnema/focusmode/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/focusmode/internal/logging"
)

// Preference keys for the focus settings.
const (
	PrefAutoActivate = "autoActivate"
	PrefBlockScroll  = "blockScroll"
)

type focusSettingsRepo struct {
	provider port.DatabaseProvider
}

// NewFocusSettingsRepository creates a SQLite-backed settings repository over
// an open connection.
func NewFocusSettingsRepository(db *sql.DB) repository.FocusSettingsRepository {
	return &focusSettingsRepo{provider: openDB{db: db}}
}

// NewLazyFocusSettingsRepository creates a settings repository that opens the
// database on first use.
func NewLazyFocusSettingsRepository(provider port.DatabaseProvider) repository.FocusSettingsRepository {
	return &focusSettingsRepo{provider: provider}
}

// Get returns the stored settings. Keys that were never written keep the
// value from defaults; unparsable values are logged and also fall back.
func (r *focusSettingsRepo) Get(ctx context.Context, defaults entity.FocusSettings) (entity.FocusSettings, error) {
	log := logging.FromContext(ctx)

	db, err := r.provider.DB(ctx)
	if err != nil {
		return defaults, err
	}

	rows, err := sqlc.New(db).ListPreferences(ctx)
	if err != nil {
		return defaults, fmt.Errorf("failed to list preferences: %w", err)
	}

	settings := defaults
	for _, row := range rows {
		var target *bool
		switch row.Key {
		case PrefAutoActivate:
			target = &settings.AutoActivate
		case PrefBlockScroll:
			target = &settings.BlockScroll
		default:
			continue
		}

		v, parseErr := strconv.ParseBool(row.Value)
		if parseErr != nil {
			log.Warn().Str("key", row.Key).Str("value", row.Value).Msg("ignoring malformed preference")
			continue
		}
		*target = v
	}

	log.Debug().
		Bool("auto_activate", settings.AutoActivate).
		Bool("block_scroll", settings.BlockScroll).
		Msg("loaded focus settings")

	return settings, nil
}

// Set writes both settings in one transaction.
func (r *focusSettingsRepo) Set(ctx context.Context, settings entity.FocusSettings) error {
	db, err := r.provider.DB(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := sqlc.New(db).WithTx(tx)
	for key, value := range map[string]bool{
		PrefAutoActivate: settings.AutoActivate,
		PrefBlockScroll:  settings.BlockScroll,
	} {
		if err := q.SetPreference(ctx, sqlc.SetPreferenceParams{
			Key:   key,
			Value: strconv.FormatBool(value),
		}); err != nil {
			return fmt.Errorf("failed to store %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// openDB adapts an already open connection to port.DatabaseProvider.
type openDB struct {
	db *sql.DB
}

func (o openDB) DB(context.Context) (*sql.DB, error) { return o.db, nil }
func (o openDB) Close() error                        { return o.db.Close() }
func (o openDB) IsInitialized() bool                 { return o.db != nil }
