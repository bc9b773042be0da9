package port

import (
	"context"

	"github.com/bnema/focusmode/internal/domain/entity"
)

// FocusCommander is the control-surface side of the bridge: it sends
// commands to the focus controller of the current page.
type FocusCommander interface {
	// ToggleFocusMode asks the page to toggle and waits for the acknowledgment.
	ToggleFocusMode(ctx context.Context) error

	// FocusState queries whether focus mode is active on the page.
	FocusState(ctx context.Context) (bool, error)

	// PushSettings sends new settings to the page.
	PushSettings(ctx context.Context, settings entity.FocusSettings) error

	// PageURL returns the URL of the page the commander talks to, or "".
	PageURL() string
}
