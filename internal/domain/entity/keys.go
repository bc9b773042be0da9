package entity

import (
	"strings"
)

// KeyModifier is a bitmask of held modifier keys.
type KeyModifier uint8

const (
	ModNone  KeyModifier = 0
	ModCtrl  KeyModifier = 1 << 0
	ModShift KeyModifier = 1 << 1
	ModAlt   KeyModifier = 1 << 2
	ModMeta  KeyModifier = 1 << 3
)

// KeyPress is a key-down event reported by the page, using DOM KeyboardEvent.code values.
type KeyPress struct {
	Code      string      `json:"code"`
	Modifiers KeyModifier `json:"modifiers"`
}

// KeyChord is a configured shortcut such as "alt+f" or "escape".
type KeyChord struct {
	Code      string
	Modifiers KeyModifier
}

// Matches reports whether the key press triggers this chord.
func (c KeyChord) Matches(k KeyPress) bool {
	return c.Code != "" && c.Code == k.Code && c.Modifiers == k.Modifiers
}

var namedKeyCodes = map[string]string{
	"escape":    "Escape",
	"esc":       "Escape",
	"enter":     "Enter",
	"return":    "Enter",
	"space":     "Space",
	"tab":       "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PageUp",
	"pagedown":  "PageDown",
	"up":        "ArrowUp",
	"down":      "ArrowDown",
	"left":      "ArrowLeft",
	"right":     "ArrowRight",
	"f1":        "F1",
	"f2":        "F2",
	"f3":        "F3",
	"f4":        "F4",
	"f5":        "F5",
	"f6":        "F6",
	"f7":        "F7",
	"f8":        "F8",
	"f9":        "F9",
	"f10":       "F10",
	"f11":       "F11",
	"f12":       "F12",
}

// ParseKeyChord converts a config key string like "alt+f" to a KeyChord.
// Returns false if the string cannot be parsed.
func ParseKeyChord(s string) (KeyChord, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KeyChord{}, false
	}

	var modifiers KeyModifier
	var keyPart string

	for _, part := range strings.Split(s, "+") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		switch part {
		case "ctrl", "control":
			modifiers |= ModCtrl
		case "shift":
			modifiers |= ModShift
		case "alt":
			modifiers |= ModAlt
		case "meta", "super":
			modifiers |= ModMeta
		default:
			if keyPart != "" {
				return KeyChord{}, false
			}
			keyPart = part
		}
	}

	code, ok := keyCode(keyPart)
	if !ok {
		return KeyChord{}, false
	}
	return KeyChord{Code: code, Modifiers: modifiers}, true
}

func keyCode(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	if code, ok := namedKeyCodes[key]; ok {
		return code, true
	}
	if len(key) == 1 {
		switch c := key[0]; {
		case c >= 'a' && c <= 'z':
			return "Key" + strings.ToUpper(key), true
		case c >= '0' && c <= '9':
			return "Digit" + key, true
		}
	}
	return "", false
}
