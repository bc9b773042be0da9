package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/focusmode/internal/app/focushost"
	"github.com/bnema/focusmode/internal/domain/entity"
	repomocks "github.com/bnema/focusmode/internal/domain/repository/mocks"
	"github.com/bnema/focusmode/internal/infrastructure/config"
	"github.com/bnema/focusmode/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestSimulator(t *testing.T, settings entity.FocusSettings) *Simulator {
	t.Helper()

	opts, err := focushost.FocusOptions(config.DefaultConfig().Focus)
	require.NoError(t, err)

	repo := repomocks.NewMockFocusSettingsRepository(t)
	repo.EXPECT().Get(mock.Anything, mock.Anything).Return(settings, nil)

	sim, err := NewSimulator(testContext(), opts, repo)
	require.NoError(t, err)
	t.Cleanup(sim.Close)
	return sim
}

func (s *Simulator) focusState(t *testing.T) entity.FocusState {
	t.Helper()
	var state entity.FocusState
	require.NoError(t, s.Do(func() { state = s.Controller().State() }))
	return state
}

func TestSimulator_AutoActivatesOnPlay(t *testing.T) {
	sim := newTestSimulator(t, entity.FocusSettings{AutoActivate: true, BlockScroll: true})

	sim.InsertPlayer()
	assert.False(t, sim.focusState(t).Active)

	sim.TogglePlay()
	assert.True(t, sim.focusState(t).Active)
	assert.True(t, sim.Page().HasMarker(entity.MarkerFocusMode))
	assert.True(t, sim.Page().HasMarker(entity.MarkerNoScroll))
	assert.Contains(t, sim.Status(), "player: playing")
}

func TestSimulator_ManualExitHoldsUntilNextVideo(t *testing.T) {
	sim := newTestSimulator(t, entity.FocusSettings{AutoActivate: true, BlockScroll: false})
	ctx := testContext()

	sim.InsertPlayer()
	sim.TogglePlay()
	require.True(t, sim.focusState(t).Active)

	require.NoError(t, sim.Bridge().ToggleFocusMode(ctx))
	assert.Equal(t, entity.FocusState{Active: false, ManualOverride: true}, sim.focusState(t))

	// Pause and resume the same video.
	sim.TogglePlay()
	sim.TogglePlay()
	assert.False(t, sim.focusState(t).Active)

	sim.NextVideo()
	assert.False(t, sim.focusState(t).ManualOverride)

	sim.TogglePlay()
	assert.True(t, sim.focusState(t).Active)
}

func TestSimulator_NoAutoActivationWhenDisabled(t *testing.T) {
	sim := newTestSimulator(t, entity.FocusSettings{AutoActivate: false, BlockScroll: true})

	sim.InsertPlayer()
	sim.TogglePlay()
	sim.Mutate()

	assert.False(t, sim.focusState(t).Active)
	assert.Zero(t, sim.Page().Observers())
	assert.Contains(t, sim.Status(), "watcher: disabled")
}

func TestSimulator_RemovePlayer(t *testing.T) {
	sim := newTestSimulator(t, entity.DefaultFocusSettings())

	sim.InsertPlayer()
	sim.RemovePlayer()
	assert.Contains(t, sim.Status(), "player: none")
}

func TestSimulator_StatusAfterClose(t *testing.T) {
	sim := newTestSimulator(t, entity.DefaultFocusSettings())
	sim.Close()

	assert.Equal(t, "simulator stopped", sim.Status())
	// Actions on a stopped simulator are dropped.
	sim.NextVideo()
}
