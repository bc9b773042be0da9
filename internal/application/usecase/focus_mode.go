// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"

	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/domain/repository"
	"github.com/bnema/focusmode/internal/logging"
)

// FocusModeOptions configures a FocusModeUseCase.
type FocusModeOptions struct {
	// ContentParam is the query parameter carrying the content token.
	ContentParam string
	ToggleKey    entity.KeyChord
	// ExitKey only fires while focus mode is active.
	ExitKey entity.KeyChord
}

// FocusModeUseCase owns the focus mode of one page instance: mode state,
// navigation tracking, the activation policy and the watcher lifecycle.
//
// It holds no locks. Every entry point must run to completion on the host's
// main loop before the next one starts.
type FocusModeUseCase struct {
	page         port.FocusPage
	notifier     port.FocusNotifier
	settingsRepo repository.FocusSettingsRepository
	opts         FocusModeOptions

	settings  entity.FocusSettings
	state     entity.FocusState
	lastToken entity.ContentToken
	watcher   port.StructureSubscription
}

// NewFocusModeUseCase creates the controller for the page. The current
// location is recorded as the last-seen content token.
func NewFocusModeUseCase(
	page port.FocusPage,
	notifier port.FocusNotifier,
	settingsRepo repository.FocusSettingsRepository,
	opts FocusModeOptions,
) *FocusModeUseCase {
	if opts.ContentParam == "" {
		opts.ContentParam = "v"
	}
	return &FocusModeUseCase{
		page:         page,
		notifier:     notifier,
		settingsRepo: settingsRepo,
		opts:         opts,
		settings:     entity.DefaultFocusSettings(),
		lastToken:    entity.ContentTokenFromURL(page.URL(), opts.ContentParam),
	}
}

// Start loads the stored settings and applies them. It is the only call
// that waits on the settings store.
func (uc *FocusModeUseCase) Start(ctx context.Context) {
	log := logging.FromContext(ctx)

	settings := entity.DefaultFocusSettings()
	if uc.settingsRepo != nil {
		loaded, err := uc.settingsRepo.Get(ctx, settings)
		if err != nil {
			log.Warn().Err(err).Msg("failed to load focus settings, using defaults")
		} else {
			settings = loaded
		}
	}

	log.Debug().
		Bool("auto_activate", settings.AutoActivate).
		Bool("block_scroll", settings.BlockScroll).
		Msg("focus settings loaded")

	uc.ApplySettings(ctx, settings)
}

// Close tears down the page instance.
func (uc *FocusModeUseCase) Close(ctx context.Context) {
	uc.disableWatcher(ctx)
}

// IsActive returns whether focus mode is on. No side effects.
func (uc *FocusModeUseCase) IsActive() bool {
	return uc.state.Active
}

// State returns a copy of the mode state.
func (uc *FocusModeUseCase) State() entity.FocusState {
	return uc.state
}

// Settings returns the cached settings.
func (uc *FocusModeUseCase) Settings() entity.FocusSettings {
	return uc.settings
}

// Toggle flips focus mode as an explicit user action and returns the new value.
func (uc *FocusModeUseCase) Toggle(ctx context.Context, trigger entity.FocusTrigger) bool {
	active := uc.state.Toggle()

	logging.FromContext(ctx).Info().
		Bool("active", active).
		Bool("manual_override", uc.state.ManualOverride).
		Str("trigger", string(trigger)).
		Msg("focus mode toggled")

	uc.render(ctx)
	return active
}

// HandleKey runs the key shortcuts. The toggle key works both ways, the exit
// key only while focus mode is active. Returns true when the key was consumed.
func (uc *FocusModeUseCase) HandleKey(ctx context.Context, key entity.KeyPress) bool {
	if uc.opts.ToggleKey.Matches(key) {
		uc.Toggle(ctx, entity.TriggerKey)
		return true
	}
	if uc.opts.ExitKey.Matches(key) && uc.state.Active {
		uc.Toggle(ctx, entity.TriggerKey)
		return true
	}
	return false
}

// SetKeyBindings replaces the shortcut chords, e.g. after a config reload.
func (uc *FocusModeUseCase) SetKeyBindings(toggle, exit entity.KeyChord) {
	uc.opts.ToggleKey = toggle
	uc.opts.ExitKey = exit
}

// ApplySettings replaces the cached settings and re-applies their effects.
// Applying the same settings twice yields the same end state.
func (uc *FocusModeUseCase) ApplySettings(ctx context.Context, settings entity.FocusSettings) {
	uc.settings = settings

	if settings.AutoActivate {
		uc.enableWatcher(ctx)
	} else {
		uc.disableWatcher(ctx)
	}

	uc.setMarker(ctx, entity.MarkerNoScroll, settings.BlockScroll)
}

// activate is the automatic activation path. It leaves ManualOverride alone.
func (uc *FocusModeUseCase) activate(ctx context.Context) bool {
	if !uc.state.ActivateAuto() {
		return false
	}

	logging.FromContext(ctx).Info().
		Bool("active", true).
		Str("trigger", string(entity.TriggerAuto)).
		Str("content", string(uc.lastToken)).
		Msg("focus mode auto-activated")

	uc.render(ctx)
	return true
}

// render pushes the mode state to the page and notifies control surfaces.
func (uc *FocusModeUseCase) render(ctx context.Context) {
	uc.setMarker(ctx, entity.MarkerFocusMode, uc.state.Active)
	if err := uc.page.Relayout(ctx); err != nil {
		uc.discardHostError(ctx, "relayout", err)
	}
	uc.notify(ctx)
}

func (uc *FocusModeUseCase) setMarker(ctx context.Context, marker entity.Marker, present bool) {
	if err := uc.page.SetMarker(ctx, marker, present); err != nil {
		uc.discardHostError(ctx, "set marker "+string(marker), err)
	}
}

// notify sends the mode-changed notification. Delivery is at-most-once:
// failures are dropped here and never retried.
func (uc *FocusModeUseCase) notify(ctx context.Context) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.NotifyFocusState(ctx, uc.state.Active); err != nil {
		uc.discardHostError(ctx, "notify focus state", err)
	}
}

func (uc *FocusModeUseCase) discardHostError(ctx context.Context, op string, err error) {
	log := logging.FromContext(ctx)
	if port.IsDeliveryFailure(err) {
		log.Trace().Err(err).Str("op", op).Msg("best-effort call dropped")
		return
	}
	log.Warn().Err(err).Str("op", op).Msg("page call failed")
}
