// Package model contains the Bubble Tea models of the CLI.
package model

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/focusmode/internal/app/messaging"
	"github.com/bnema/focusmode/internal/application/usecase"
	"github.com/bnema/focusmode/internal/cli/styles"
	"github.com/bnema/focusmode/internal/domain/entity"
)

const (
	itemAutoActivate = iota
	itemBlockScroll
	itemAction
	itemCount
)

const notificationBuffer = 8

// Simulator drives a simulated page from the surface. Calls may block until
// the page's main loop has run them.
type Simulator interface {
	NextVideo()
	TogglePlay()
	InsertPlayer()
	RemovePlayer()
	Mutate()
	Status() string
}

// SurfaceModelConfig wires a SurfaceModel.
type SurfaceModelConfig struct {
	Surface *usecase.FocusSurfaceUseCase
	// Subscribe registers for focus-state notifications from the page.
	Subscribe func(func(messaging.FocusStateNotification)) (unsubscribe func())
	// Simulator enables the page simulation keys when set.
	Simulator Simulator
	Title     string
}

// SurfaceModel is the terminal control surface: two settings toggles and
// the focus mode button.
type SurfaceModel struct {
	ctx   context.Context
	theme *styles.Theme
	cfg   SurfaceModelConfig
	keys  styles.SurfaceKeyMap
	help  help.Model

	settings entity.FocusSettings
	state    usecase.SurfaceState
	cursor   int
	loaded   bool
	err      error
	simState string
	width    int

	notes       chan messaging.FocusStateNotification
	unsubscribe func()
}

type settingsLoadedMsg struct {
	settings entity.FocusSettings
}

type settingsSavedMsg struct {
	settings entity.FocusSettings
	err      error
}

type stateMsg struct {
	state usecase.SurfaceState
}

type toggledMsg struct {
	err error
}

type notificationMsg struct {
	note messaging.FocusStateNotification
}

type simulatedMsg struct {
	status string
}

// NewSurfaceModel creates the surface and subscribes to page notifications.
// Call Close once the program exits.
func NewSurfaceModel(ctx context.Context, theme *styles.Theme, cfg SurfaceModelConfig) SurfaceModel {
	if cfg.Title == "" {
		cfg.Title = "focusmode"
	}

	m := SurfaceModel{
		ctx:   ctx,
		theme: theme,
		cfg:   cfg,
		keys:  styles.DefaultSurfaceKeyMap(cfg.Simulator != nil),
		help:  styles.NewStyledHelp(theme),
		state: usecase.SurfaceState{Label: usecase.LabelOpenVideo},
		notes: make(chan messaging.FocusStateNotification, notificationBuffer),
		width: 60,
	}

	if cfg.Subscribe != nil {
		notes := m.notes
		m.unsubscribe = cfg.Subscribe(func(n messaging.FocusStateNotification) {
			select {
			case notes <- n:
			default:
			}
		})
	}
	if cfg.Simulator != nil {
		m.simState = cfg.Simulator.Status()
	}
	return m
}

// Close drops the notification subscription.
func (m SurfaceModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m SurfaceModel) Init() tea.Cmd {
	return tea.Batch(m.loadSettings, m.refreshState, m.waitForNotification)
}

func (m SurfaceModel) loadSettings() tea.Msg {
	return settingsLoadedMsg{settings: m.cfg.Surface.LoadSettings(m.ctx)}
}

func (m SurfaceModel) refreshState() tea.Msg {
	return stateMsg{state: m.cfg.Surface.State(m.ctx)}
}

func (m SurfaceModel) waitForNotification() tea.Msg {
	select {
	case n := <-m.notes:
		return notificationMsg{note: n}
	case <-m.ctx.Done():
		return nil
	}
}

func (m SurfaceModel) saveSettings(settings entity.FocusSettings) tea.Cmd {
	return func() tea.Msg {
		err := m.cfg.Surface.SaveSettings(m.ctx, settings)
		return settingsSavedMsg{settings: settings, err: err}
	}
}

func (m SurfaceModel) toggle() tea.Msg {
	return toggledMsg{err: m.cfg.Surface.Toggle(m.ctx)}
}

func (m SurfaceModel) simulate(action func()) tea.Cmd {
	sim := m.cfg.Simulator
	return func() tea.Msg {
		action()
		return simulatedMsg{status: sim.Status()}
	}
}

// Update implements tea.Model.
func (m SurfaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case settingsLoadedMsg:
		m.settings = msg.settings
		m.loaded = true

	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.settings = msg.settings

	case stateMsg:
		m.state = msg.state

	case toggledMsg:
		m.err = msg.err
		return m, m.refreshState

	case notificationMsg:
		// The notification carries the new value, but the label also depends
		// on whether the page still answers, so re-query.
		return m, tea.Batch(m.refreshState, m.waitForNotification)

	case simulatedMsg:
		m.simState = msg.status
		return m, m.refreshState
	}

	return m, nil
}

func (m SurfaceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + itemCount - 1) % itemCount
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % itemCount
	case key.Matches(msg, m.keys.Select):
		return m, m.activate(m.cursor)
	case key.Matches(msg, m.keys.Toggle):
		return m, m.activate(itemAction)
	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.loadSettings, m.refreshState)
	case key.Matches(msg, m.keys.Navigate):
		return m, m.simulate(m.cfg.Simulator.NextVideo)
	case key.Matches(msg, m.keys.Play):
		return m, m.simulate(m.cfg.Simulator.TogglePlay)
	case key.Matches(msg, m.keys.Insert):
		return m, m.simulate(m.cfg.Simulator.InsertPlayer)
	case key.Matches(msg, m.keys.Remove):
		return m, m.simulate(m.cfg.Simulator.RemovePlayer)
	case key.Matches(msg, m.keys.Mutate):
		return m, m.simulate(m.cfg.Simulator.Mutate)
	}
	return m, nil
}

func (m SurfaceModel) activate(item int) tea.Cmd {
	switch item {
	case itemAutoActivate:
		if !m.loaded {
			return nil
		}
		next := m.settings
		next.AutoActivate = !next.AutoActivate
		return m.saveSettings(next)
	case itemBlockScroll:
		if !m.loaded {
			return nil
		}
		next := m.settings
		next.BlockScroll = !next.BlockScroll
		return m.saveSettings(next)
	case itemAction:
		if !m.state.Enabled {
			return nil
		}
		return m.toggle
	}
	return nil
}

// View implements tea.Model.
func (m SurfaceModel) View() string {
	t := m.theme

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Title.Render(m.cfg.Title),
		"  ",
		t.FocusBadge(m.state.Active),
	)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		t.Checkbox("Auto-activate on video pages", m.settings.AutoActivate, m.cursor == itemAutoActivate),
		t.Checkbox("Block page scroll", m.settings.BlockScroll, m.cursor == itemBlockScroll),
		"",
		t.ActionButton(m.state.Label, m.state.Enabled, m.cursor == itemAction),
	)

	sections := []string{header, "", body}

	if m.simState != "" {
		sections = append(sections, "", t.Subtle.Render(m.simState))
	}
	if m.err != nil {
		sections = append(sections, "", t.ErrorStyle.Render("Error: "+m.err.Error()))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

var _ tea.Model = (*SurfaceModel)(nil)
