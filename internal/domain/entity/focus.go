package entity

import (
	"net/url"
	"strings"
)

// FocusSettings are the two user preferences owned by the settings store.
type FocusSettings struct {
	AutoActivate bool `json:"autoActivate" jsonschema:"description=Turn focus mode on automatically when a video starts playing"`
	BlockScroll  bool `json:"blockScroll" jsonschema:"description=Prevent page scrolling while focus mode is on"`
}

// DefaultFocusSettings returns the settings used when the store holds nothing.
func DefaultFocusSettings() FocusSettings {
	return FocusSettings{
		AutoActivate: false,
		BlockScroll:  true,
	}
}

// FocusState is the mode state of one page instance. It is never persisted.
type FocusState struct {
	Active bool
	// ManualOverride suppresses automatic activation until the content changes.
	ManualOverride bool
}

// Toggle flips Active. Turning the mode off records a manual override,
// turning it on counts as fresh consent and clears it.
func (s *FocusState) Toggle() bool {
	s.Active = !s.Active
	s.ManualOverride = !s.Active
	return s.Active
}

// CanAutoActivate reports whether automatic activation may turn the mode on.
func (s FocusState) CanAutoActivate() bool {
	return !s.Active && !s.ManualOverride
}

// ActivateAuto turns the mode on without touching ManualOverride.
// Returns false when the state did not change.
func (s *FocusState) ActivateAuto() bool {
	if !s.CanAutoActivate() {
		return false
	}
	s.Active = true
	return true
}

// ClearOverride drops the manual suppression.
func (s *FocusState) ClearOverride() {
	s.ManualOverride = false
}

// ContentToken identifies the item playing on a page. Equal tokens mean the
// same item; the empty token is a valid value for pages without one.
type ContentToken string

// ContentTokenFromURL extracts the token carried by the given query parameter.
func ContentTokenFromURL(rawURL, param string) ContentToken {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return ContentToken(u.Query().Get(param))
}

// PlaybackState is the presence/playing predicate of the page's playable element.
type PlaybackState struct {
	Present bool
	Playing bool
}

// Marker is a presentational marker applied to the page root.
type Marker string

const (
	MarkerFocusMode Marker = "focus-mode"
	MarkerNoScroll  Marker = "no-scroll"
)

// WatcherState is the lifecycle state of the structural-change watcher.
type WatcherState int

const (
	WatcherDisabled WatcherState = iota
	WatcherEnabled
)

func (w WatcherState) String() string {
	if w == WatcherEnabled {
		return "enabled"
	}
	return "disabled"
}

// FocusTrigger names what caused a mode change.
type FocusTrigger string

const (
	TriggerManual  FocusTrigger = "manual"
	TriggerKey     FocusTrigger = "key"
	TriggerCommand FocusTrigger = "command"
	TriggerAuto    FocusTrigger = "auto"
)

// MatchesFocusPage reports whether a page URL is one the controller attaches to.
func MatchesFocusPage(rawURL, pattern string) bool {
	if rawURL == "" || pattern == "" {
		return false
	}
	return strings.Contains(rawURL, pattern)
}
