package pagescript

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/focusmode/internal/domain/entity"
)

// Signal kinds posted by the page script.
const (
	KindReady     = "ready"
	KindLocation  = "location"
	KindStructure = "structure"
	KindPlay      = "play"
	KindPause     = "pause"
	KindKey       = "key"
)

// Signal is one message from the page script. Every signal carries the
// current location and a playback snapshot.
type Signal struct {
	Kind    string `json:"kind"`
	URL     string `json:"url"`
	Present bool   `json:"present"`
	Playing bool   `json:"playing"`

	// Key fields, set for KindKey.
	Code  string `json:"code,omitempty"`
	Alt   bool   `json:"alt,omitempty"`
	Ctrl  bool   `json:"ctrl,omitempty"`
	Shift bool   `json:"shift,omitempty"`
	Meta  bool   `json:"meta,omitempty"`
}

var errMissingKind = errors.New("signal has no kind")

// ParseSignal decodes a page script message.
func ParseSignal(payload []byte) (Signal, error) {
	var sig Signal
	if err := json.Unmarshal(payload, &sig); err != nil {
		return Signal{}, fmt.Errorf("decode page signal: %w", err)
	}
	if sig.Kind == "" {
		return Signal{}, errMissingKind
	}
	return sig, nil
}

// Playback returns the playback snapshot carried by the signal.
func (s Signal) Playback() entity.PlaybackState {
	return entity.PlaybackState{Present: s.Present, Playing: s.Present && s.Playing}
}

// KeyPress returns the key carried by a KindKey signal.
func (s Signal) KeyPress() entity.KeyPress {
	var mods entity.KeyModifier
	if s.Alt {
		mods |= entity.ModAlt
	}
	if s.Ctrl {
		mods |= entity.ModCtrl
	}
	if s.Shift {
		mods |= entity.ModShift
	}
	if s.Meta {
		mods |= entity.ModMeta
	}
	return entity.KeyPress{Code: s.Code, Modifiers: mods}
}
