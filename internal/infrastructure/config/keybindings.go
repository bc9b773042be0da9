package config

import (
	"fmt"

	"github.com/bnema/focusmode/internal/domain/entity"
)

// FocusKeys is the parsed form of the focus key bindings.
type FocusKeys struct {
	Toggle entity.KeyChord
	Exit   entity.KeyChord
}

// Keys parses the configured key chords. Load already rejects invalid ones,
// so an error here means the config was built by hand.
func (f FocusConfig) Keys() (FocusKeys, error) {
	toggle, ok := entity.ParseKeyChord(f.ToggleKey)
	if !ok {
		return FocusKeys{}, fmt.Errorf("invalid toggle key %q", f.ToggleKey)
	}
	exit, ok := entity.ParseKeyChord(f.ExitKey)
	if !ok {
		return FocusKeys{}, fmt.Errorf("invalid exit key %q", f.ExitKey)
	}
	return FocusKeys{Toggle: toggle, Exit: exit}, nil
}
