package usecase

import (
	"context"

	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/logging"
)

// CheckContentChange compares the content token of the current location with
// the last-seen one. On change it records the new token, clears the manual
// override and returns true.
func (uc *FocusModeUseCase) CheckContentChange(ctx context.Context) bool {
	token := entity.ContentTokenFromURL(uc.page.URL(), uc.opts.ContentParam)
	if token == uc.lastToken {
		return false
	}

	logging.FromContext(ctx).Debug().
		Str("from", string(uc.lastToken)).
		Str("to", string(token)).
		Bool("cleared_override", uc.state.ManualOverride).
		Msg("content changed")

	uc.lastToken = token
	uc.state.ClearOverride()
	return true
}

// MaybeAutoActivate turns focus mode on when auto-activation is enabled, the
// content is playing, the mode is off and the user has not exited manually
// on the current content. It never turns the mode off.
func (uc *FocusModeUseCase) MaybeAutoActivate(ctx context.Context, playback entity.PlaybackState) bool {
	log := logging.FromContext(ctx)

	if !uc.settings.AutoActivate || !playback.Playing || !uc.state.CanAutoActivate() {
		log.Trace().
			Bool("auto_activate", uc.settings.AutoActivate).
			Bool("present", playback.Present).
			Bool("playing", playback.Playing).
			Bool("active", uc.state.Active).
			Bool("manual_override", uc.state.ManualOverride).
			Msg("auto-activation skipped")
		return false
	}

	return uc.activate(ctx)
}

// OnPlaybackStarted handles a "playback started" event from a video element.
func (uc *FocusModeUseCase) OnPlaybackStarted(ctx context.Context) {
	uc.CheckContentChange(ctx)
	uc.MaybeAutoActivate(ctx, entity.PlaybackState{Present: true, Playing: true})
}
