// Package assets embeds the page-side script and stylesheet.
package assets

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed focus/focus.js
var focusScript string

//go:embed focus/focus.css
var focusStyles string

// Class names the stylesheet is written against.
const (
	baseFocusClass    = "uw-focus-mode"
	baseNoScrollClass = "uw-no-scroll"
)

// ScriptKey is a key chord the page script forwards to the host.
type ScriptKey struct {
	Code           string `json:"code"`
	Alt            bool   `json:"alt,omitempty"`
	Ctrl           bool   `json:"ctrl,omitempty"`
	Shift          bool   `json:"shift,omitempty"`
	Meta           bool   `json:"meta,omitempty"`
	PreventDefault bool   `json:"preventDefault,omitempty"`
}

// ScriptConfig parameterizes the page script.
type ScriptConfig struct {
	// Handler is the WebKit script message handler name.
	Handler string `json:"handler"`
	// Classes maps marker names to the CSS classes applied on the page body.
	Classes       map[string]string `json:"classes"`
	VideoSelector string            `json:"videoSelector"`
	Keys          []ScriptKey       `json:"keys"`
}

// PageScript returns the page script with cfg prepended.
func PageScript(cfg ScriptConfig) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal page script config: %w", err)
	}
	return "window.__focusmodeConfig = " + string(data) + ";\n" + focusScript, nil
}

// Stylesheet returns the focus stylesheet rewritten for the configured classes.
func Stylesheet(focusClass, noScrollClass string) string {
	return strings.NewReplacer(
		baseFocusClass, focusClass,
		baseNoScrollClass, noScrollClass,
	).Replace(focusStyles)
}

// RawScript returns the unparameterized page script.
func RawScript() string {
	return focusScript
}
