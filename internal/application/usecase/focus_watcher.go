package usecase

import (
	"context"

	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/logging"
)

// WatcherState returns the lifecycle state of the structural-change watcher.
func (uc *FocusModeUseCase) WatcherState() entity.WatcherState {
	if uc.watcher != nil {
		return entity.WatcherEnabled
	}
	return entity.WatcherDisabled
}

// OnStructureChanged handles a structural-change notification of the page.
// Notifications arriving after the watcher was disabled are ignored.
func (uc *FocusModeUseCase) OnStructureChanged(ctx context.Context) {
	if uc.watcher == nil {
		return
	}
	uc.CheckContentChange(ctx)
	uc.MaybeAutoActivate(ctx, uc.page.Playback())
}

// enableWatcher creates the single watcher and evaluates the policy once
// against the current page. A no-op while already enabled.
func (uc *FocusModeUseCase) enableWatcher(ctx context.Context) {
	if uc.watcher != nil {
		return
	}
	log := logging.FromContext(ctx)

	watchCtx := context.WithoutCancel(ctx)
	sub, err := uc.page.ObserveStructure(ctx, func() {
		uc.OnStructureChanged(watchCtx)
	})
	if err != nil {
		uc.discardHostError(ctx, "observe structure", err)
	} else {
		uc.watcher = sub
		log.Debug().Str("watcher", entity.WatcherEnabled.String()).Msg("structure watcher started")
	}

	uc.CheckContentChange(ctx)
	uc.MaybeAutoActivate(ctx, uc.page.Playback())
}

// disableWatcher disposes the watcher. A no-op when none exists.
func (uc *FocusModeUseCase) disableWatcher(ctx context.Context) {
	if uc.watcher == nil {
		return
	}
	uc.watcher.Stop()
	uc.watcher = nil
	logging.FromContext(ctx).Debug().Str("watcher", entity.WatcherDisabled.String()).Msg("structure watcher stopped")
}
