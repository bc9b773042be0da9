package port

import (
	"context"
	"errors"

	"github.com/bnema/focusmode/internal/domain/entity"
)

var (
	// ErrNoListener means the counterpart of a message is not currently present.
	ErrNoListener = errors.New("no listener for message")
	// ErrHostInvalidated means the host tore down the page context mid-call.
	ErrHostInvalidated = errors.New("host context invalidated")
	// ErrPageClosed is returned by page operations after the page is gone.
	ErrPageClosed = errors.New("page closed")
)

// IsDeliveryFailure reports whether err is an expected best-effort failure
// (absent counterpart or invalidated host) that callers discard.
func IsDeliveryFailure(err error) bool {
	return errors.Is(err, ErrNoListener) || errors.Is(err, ErrHostInvalidated) || errors.Is(err, ErrPageClosed)
}

// StructureSubscription is a live structural-change observation.
type StructureSubscription interface {
	// Stop disposes the observation. Safe to call more than once.
	Stop()
}

// FocusPage is the host page surface seen by the focus controller.
// Implementations are driven from the host's single main loop.
type FocusPage interface {
	// URL returns the current navigable location.
	URL() string

	// Playback returns the presence/playing predicate of the playable element.
	Playback() entity.PlaybackState

	// SetMarker adds or removes a presentational marker on the page root.
	SetMarker(ctx context.Context, marker entity.Marker, present bool) error

	// Relayout forces the page to recalculate its layout.
	Relayout(ctx context.Context) error

	// ObserveStructure starts delivering structural-change notifications of the
	// whole content area to onChange until the subscription is stopped.
	ObserveStructure(ctx context.Context, onChange func()) (StructureSubscription, error)
}

// FocusNotifier carries outbound mode-changed notifications to control surfaces.
// Delivery is at-most-once; ErrNoListener is expected when no surface is open.
type FocusNotifier interface {
	NotifyFocusState(ctx context.Context, active bool) error
}
