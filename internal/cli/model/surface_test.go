package model

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/focusmode/internal/app/messaging"
	portmocks "github.com/bnema/focusmode/internal/application/port/mocks"
	"github.com/bnema/focusmode/internal/application/usecase"
	"github.com/bnema/focusmode/internal/cli/styles"
	"github.com/bnema/focusmode/internal/domain/entity"
	repomocks "github.com/bnema/focusmode/internal/domain/repository/mocks"
	"github.com/bnema/focusmode/internal/logging"
)

const (
	matchURL = "youtube.com/watch"
	watchURL = "https://www.youtube.com/watch?v=abc"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type fakeSimulator struct {
	calls []string
}

func (s *fakeSimulator) NextVideo()    { s.calls = append(s.calls, "next") }
func (s *fakeSimulator) TogglePlay()   { s.calls = append(s.calls, "play") }
func (s *fakeSimulator) InsertPlayer() { s.calls = append(s.calls, "insert") }
func (s *fakeSimulator) RemovePlayer() { s.calls = append(s.calls, "remove") }
func (s *fakeSimulator) Mutate()       { s.calls = append(s.calls, "mutate") }
func (s *fakeSimulator) Status() string {
	return "simulated page"
}

func update(t *testing.T, m SurfaceModel, msg tea.Msg) (SurfaceModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SurfaceModel)
	require.True(t, ok)
	return sm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(
	t *testing.T,
	repo *repomocks.MockFocusSettingsRepository,
	commander *portmocks.MockFocusCommander,
	sim Simulator,
) SurfaceModel {
	t.Helper()
	uc := usecase.NewFocusSurfaceUseCase(repo, commander, matchURL)
	return NewSurfaceModel(testContext(), styles.NewTheme(), SurfaceModelConfig{
		Surface:   uc,
		Simulator: sim,
	})
}

func TestSurfaceModel_SelectCheckboxSavesSettings(t *testing.T) {
	repo := repomocks.NewMockFocusSettingsRepository(t)
	commander := portmocks.NewMockFocusCommander(t)

	repo.EXPECT().Get(mock.Anything, entity.DefaultFocusSettings()).Return(entity.DefaultFocusSettings(), nil)
	want := entity.FocusSettings{AutoActivate: true, BlockScroll: true}
	repo.EXPECT().Set(mock.Anything, want).Return(nil)
	commander.EXPECT().PageURL().Return(watchURL)
	commander.EXPECT().PushSettings(mock.Anything, want).Return(nil)

	m := newTestModel(t, repo, commander, nil)
	m, _ = update(t, m, m.loadSettings())
	require.True(t, m.loaded)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, want, m.settings)
	assert.NoError(t, m.err)
}

func TestSurfaceModel_SaveErrorKeepsSettings(t *testing.T) {
	repo := repomocks.NewMockFocusSettingsRepository(t)
	commander := portmocks.NewMockFocusCommander(t)

	repo.EXPECT().Get(mock.Anything, mock.Anything).Return(entity.DefaultFocusSettings(), nil)
	repo.EXPECT().Set(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	m := newTestModel(t, repo, commander, nil)
	m, _ = update(t, m, m.loadSettings())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, entity.DefaultFocusSettings(), m.settings)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "disk full")
}

func TestSurfaceModel_CheckboxIgnoredBeforeLoad(t *testing.T) {
	m := newTestModel(t, repomocks.NewMockFocusSettingsRepository(t), portmocks.NewMockFocusCommander(t), nil)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestSurfaceModel_ToggleRefreshesState(t *testing.T) {
	repo := repomocks.NewMockFocusSettingsRepository(t)
	commander := portmocks.NewMockFocusCommander(t)

	commander.EXPECT().PageURL().Return(watchURL)
	commander.EXPECT().FocusState(mock.Anything).Return(false, nil).Once()
	commander.EXPECT().ToggleFocusMode(mock.Anything).Return(nil)
	commander.EXPECT().FocusState(mock.Anything).Return(true, nil).Once()

	m := newTestModel(t, repo, commander, nil)
	m, _ = update(t, m, m.refreshState())
	assert.Equal(t, usecase.LabelActivate, m.state.Label)

	m, cmd := update(t, m, runeKey('f'))
	require.NotNil(t, cmd)

	m, cmd = update(t, m, cmd())
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.True(t, m.state.Active)
	assert.Equal(t, usecase.LabelExit, m.state.Label)
	assert.Contains(t, m.View(), "FOCUS ON")
}

func TestSurfaceModel_ToggleDisabledOffFocusPage(t *testing.T) {
	commander := portmocks.NewMockFocusCommander(t)
	commander.EXPECT().PageURL().Return("https://example.com/")

	m := newTestModel(t, repomocks.NewMockFocusSettingsRepository(t), commander, nil)
	m, _ = update(t, m, m.refreshState())
	assert.Equal(t, usecase.LabelOpenVideo, m.state.Label)

	_, cmd := update(t, m, runeKey('f'))
	assert.Nil(t, cmd)
}

func TestSurfaceModel_NotificationTriggersRefresh(t *testing.T) {
	commander := portmocks.NewMockFocusCommander(t)
	commander.EXPECT().PageURL().Return(watchURL)
	commander.EXPECT().FocusState(mock.Anything).Return(true, nil)

	var listener func(messaging.FocusStateNotification)
	unsubscribed := false

	uc := usecase.NewFocusSurfaceUseCase(repomocks.NewMockFocusSettingsRepository(t), commander, matchURL)
	m := NewSurfaceModel(testContext(), styles.NewTheme(), SurfaceModelConfig{
		Surface: uc,
		Subscribe: func(fn func(messaging.FocusStateNotification)) func() {
			listener = fn
			return func() { unsubscribed = true }
		},
	})
	require.NotNil(t, listener)

	listener(messaging.NewFocusStateNotification(true))

	msg := m.waitForNotification()
	require.IsType(t, notificationMsg{}, msg)

	m, cmd := update(t, m, msg)
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	// The first command refreshes the state; the second would wait for the
	// next notification.
	m, _ = update(t, m, batch[0]())
	assert.True(t, m.state.Active)

	m.Close()
	assert.True(t, unsubscribed)
}

func TestSurfaceModel_NotificationsDropWhenFull(t *testing.T) {
	var listener func(messaging.FocusStateNotification)
	uc := usecase.NewFocusSurfaceUseCase(
		repomocks.NewMockFocusSettingsRepository(t), portmocks.NewMockFocusCommander(t), matchURL)
	m := NewSurfaceModel(testContext(), styles.NewTheme(), SurfaceModelConfig{
		Surface: uc,
		Subscribe: func(fn func(messaging.FocusStateNotification)) func() {
			listener = fn
			return func() {}
		},
	})

	for i := 0; i < notificationBuffer*2; i++ {
		listener(messaging.NewFocusStateNotification(i%2 == 0))
	}
	assert.Len(t, m.notes, notificationBuffer)
}

func TestSurfaceModel_SimulatorKeys(t *testing.T) {
	commander := portmocks.NewMockFocusCommander(t)
	commander.EXPECT().PageURL().Return("").Maybe()

	sim := &fakeSimulator{}
	m := newTestModel(t, repomocks.NewMockFocusSettingsRepository(t), commander, sim)
	assert.Contains(t, m.View(), "simulated page")

	for _, r := range []rune{'n', 'p', 'i', 'x', 'm'} {
		var cmd tea.Cmd
		m, cmd = update(t, m, runeKey(r))
		require.NotNil(t, cmd, "key %q", r)

		msg := cmd()
		require.IsType(t, simulatedMsg{}, msg)
		m, _ = update(t, m, msg)
	}
	assert.Equal(t, []string{"next", "play", "insert", "remove", "mutate"}, sim.calls)
}

func TestSurfaceModel_SimulatorKeysDisabledWithoutSimulator(t *testing.T) {
	m := newTestModel(t, repomocks.NewMockFocusSettingsRepository(t), portmocks.NewMockFocusCommander(t), nil)

	_, cmd := update(t, m, runeKey('n'))
	assert.Nil(t, cmd)
}

func TestSurfaceModel_CursorWraps(t *testing.T) {
	m := newTestModel(t, repomocks.NewMockFocusSettingsRepository(t), portmocks.NewMockFocusCommander(t), nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, itemAction, m.cursor)

	m, _ = update(t, m, runeKey('j'))
	assert.Equal(t, itemAutoActivate, m.cursor)
}

func TestSurfaceModel_Quit(t *testing.T) {
	m := newTestModel(t, repomocks.NewMockFocusSettingsRepository(t), portmocks.NewMockFocusCommander(t), nil)

	_, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
