package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// SurfaceKeyMap defines keybindings for the control surface.
type SurfaceKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Toggle  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding

	// Page simulation, only bound in the simulator.
	Navigate key.Binding
	Play     key.Binding
	Insert   key.Binding
	Remove   key.Binding
	Mutate   key.Binding

	simulator bool
}

// ShortHelp returns keybindings to show in compact help.
func (k SurfaceKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Toggle, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k SurfaceKeyMap) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Toggle, k.Refresh},
	}
	if k.simulator {
		groups = append(groups, []key.Binding{k.Navigate, k.Play, k.Insert, k.Remove, k.Mutate})
	}
	return append(groups, []key.Binding{k.Help, k.Quit})
}

// DefaultSurfaceKeyMap returns the default control-surface keybindings.
// Simulation keys are disabled unless simulator is set.
func DefaultSurfaceKeyMap(simulator bool) SurfaceKeyMap {
	k := SurfaceKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle focus"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next video"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play/pause"),
		),
		Insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insert player"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove player"),
		),
		Mutate: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mutate dom"),
		),
		simulator: simulator,
	}

	for _, b := range []*key.Binding{&k.Navigate, &k.Play, &k.Insert, &k.Remove, &k.Mutate} {
		b.SetEnabled(simulator)
	}
	return k
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
