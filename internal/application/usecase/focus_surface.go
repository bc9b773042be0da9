package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/domain/repository"
	"github.com/bnema/focusmode/internal/logging"
)

// Surface button labels.
const (
	LabelOpenVideo  = "Open a video"
	LabelActivate   = "Activate Focus Mode"
	LabelExit       = "Exit Focus Mode"
	LabelReloadPage = "Reload page to enable"
)

// SurfaceState is what a control surface shows for the current page.
type SurfaceState struct {
	Enabled bool
	Active  bool
	Label   string
}

// FocusSurfaceUseCase drives a control surface: it edits the stored settings
// and talks to the current page through the bridge.
type FocusSurfaceUseCase struct {
	settingsRepo repository.FocusSettingsRepository
	commander    port.FocusCommander
	matchURL     string
}

// NewFocusSurfaceUseCase creates a control-surface use case. Only pages whose
// URL contains matchURL are considered focus pages.
func NewFocusSurfaceUseCase(
	settingsRepo repository.FocusSettingsRepository,
	commander port.FocusCommander,
	matchURL string,
) *FocusSurfaceUseCase {
	return &FocusSurfaceUseCase{
		settingsRepo: settingsRepo,
		commander:    commander,
		matchURL:     matchURL,
	}
}

// LoadSettings reads the stored settings, falling back to defaults.
func (uc *FocusSurfaceUseCase) LoadSettings(ctx context.Context) entity.FocusSettings {
	defaults := entity.DefaultFocusSettings()
	settings, err := uc.settingsRepo.Get(ctx, defaults)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("error loading settings")
		return defaults
	}
	return settings
}

// SaveSettings stores the settings, then pushes them to the page if one is
// open. A page that is not listening is not an error.
func (uc *FocusSurfaceUseCase) SaveSettings(ctx context.Context, settings entity.FocusSettings) error {
	log := logging.FromContext(ctx)

	if err := uc.settingsRepo.Set(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Info().
		Bool("auto_activate", settings.AutoActivate).
		Bool("block_scroll", settings.BlockScroll).
		Msg("focus settings saved")

	if !uc.onFocusPage() {
		return nil
	}
	if err := uc.commander.PushSettings(ctx, settings); err != nil {
		log.Trace().Err(err).Msg("page not ready for settings push")
	}
	return nil
}

// Toggle asks the page to toggle focus mode. No-op off focus pages.
func (uc *FocusSurfaceUseCase) Toggle(ctx context.Context) error {
	if !uc.onFocusPage() {
		return nil
	}
	if err := uc.commander.ToggleFocusMode(ctx); err != nil {
		return fmt.Errorf("failed to toggle focus mode: %w", err)
	}
	return nil
}

// State queries the page and returns what the surface should display.
func (uc *FocusSurfaceUseCase) State(ctx context.Context) SurfaceState {
	if !uc.onFocusPage() {
		return SurfaceState{Label: LabelOpenVideo}
	}

	active, err := uc.commander.FocusState(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("focus state query failed")
		return SurfaceState{Label: LabelReloadPage}
	}

	if active {
		return SurfaceState{Enabled: true, Active: true, Label: LabelExit}
	}
	return SurfaceState{Enabled: true, Label: LabelActivate}
}

func (uc *FocusSurfaceUseCase) onFocusPage() bool {
	return entity.MatchesFocusPage(uc.commander.PageURL(), uc.matchURL)
}
