package repository

import (
	"context"

	"github.com/bnema/focusmode/internal/domain/entity"
)

// FocusSettingsRepository is the durable preference store.
// Changes are not observed; callers re-read or push explicitly.
type FocusSettingsRepository interface {
	// Get returns the stored settings, using defaults for any absent key.
	Get(ctx context.Context, defaults entity.FocusSettings) (entity.FocusSettings, error)

	// Set stores both preferences.
	Set(ctx context.Context, settings entity.FocusSettings) error
}
