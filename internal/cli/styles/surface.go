package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Checkbox renders a labelled setting toggle.
func (t *Theme) Checkbox(label string, checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}

	cursor := "  "
	style := t.Normal
	if focused {
		cursor = t.Highlight.Render("> ")
		style = t.Highlight
	}
	return cursor + style.Render(box+" "+label)
}

// ActionButton renders the surface's main button.
func (t *Theme) ActionButton(label string, enabled, focused bool) string {
	cursor := "  "
	if focused {
		cursor = t.Highlight.Render("> ")
	}
	switch {
	case !enabled:
		return cursor + t.ButtonDisabled.Render(label)
	case focused:
		return cursor + t.ButtonFocused.Render(label)
	default:
		return cursor + t.Button.Render(label)
	}
}

// FocusBadge renders the focus mode status.
func (t *Theme) FocusBadge(active bool) string {
	if active {
		return t.Badge.Render("FOCUS ON")
	}
	return t.BadgeMuted.Render("focus off")
}

// SettingsRenderer prints stored settings for non-interactive commands.
type SettingsRenderer struct {
	theme *Theme
}

// NewSettingsRenderer creates a settings renderer.
func NewSettingsRenderer(theme *Theme) *SettingsRenderer {
	return &SettingsRenderer{theme: theme}
}

// SettingRow is one line of RenderSettings output.
type SettingRow struct {
	Key   string
	Value bool
}

// RenderSettings renders the settings as an aligned key/value list.
func (r *SettingsRenderer) RenderSettings(rows []SettingRow, source string) string {
	t := r.theme

	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.Key))
	}

	var b strings.Builder
	b.WriteString(t.BoxHeader.Render("Focus settings"))
	b.WriteString("\n")
	for _, row := range rows {
		value := t.ErrorStyle.Render("off")
		if row.Value {
			value = t.SuccessStyle.Render("on")
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", t.Normal.Render(padRight(row.Key, width)), value))
	}
	if source != "" {
		b.WriteString("\n")
		b.WriteString(t.Subtle.Render(source))
	}
	return t.Box.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderSaved renders the confirmation after a settings change.
func (r *SettingsRenderer) RenderSaved(key string, value bool) string {
	return fmt.Sprintf("%s %s = %t", r.theme.SuccessStyle.Render("✓"), key, value)
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
