package bridge_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/focusmode/internal/app/bridge"
	"github.com/bnema/focusmode/internal/app/messaging"
	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/application/usecase"
	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/infrastructure/simpage"
	"github.com/bnema/focusmode/internal/logging"
	"github.com/bnema/focusmode/internal/ui/mainloop"
)

const watchURL = "https://www.youtube.com/watch?v=abc"

type harness struct {
	ctx    context.Context
	loop   *mainloop.Loop
	page   *simpage.Page
	focus  *usecase.FocusModeUseCase
	bridge *bridge.Bridge
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := logging.NewFromConfigValues("debug", "console")
	ctx, cancel := context.WithCancel(logging.WithContext(context.Background(), logger))

	loop := mainloop.NewLoop()
	go loop.Run(ctx)
	t.Cleanup(func() {
		cancel()
		loop.Close()
	})

	page := simpage.New(watchURL)
	b := bridge.New(loop.Post)
	toggle, _ := entity.ParseKeyChord("alt+f")
	exit, _ := entity.ParseKeyChord("escape")
	focus := usecase.NewFocusModeUseCase(page, b, nil, usecase.FocusModeOptions{
		ContentParam: "v",
		ToggleKey:    toggle,
		ExitKey:      exit,
	})
	require.NoError(t, loop.Do(ctx, func() { focus.Start(ctx) }))
	b.Attach(messaging.NewFocusRouter(focus), page.URL)

	return &harness{ctx: ctx, loop: loop, page: page, focus: focus, bridge: b}
}

func (h *harness) state(t *testing.T) entity.FocusState {
	t.Helper()
	var state entity.FocusState
	require.NoError(t, h.loop.Do(h.ctx, func() { state = h.focus.State() }))
	return state
}

func TestBridge_ToggleRoundTrip(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.bridge.ToggleFocusMode(h.ctx))
	assert.True(t, h.state(t).Active)
	assert.True(t, h.page.HasMarker(entity.MarkerFocusMode))

	active, err := h.bridge.FocusState(h.ctx)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestBridge_QueryDoesNotMutate(t *testing.T) {
	h := newHarness(t)
	before := h.state(t)
	relayouts := h.page.Relayouts()

	for range 3 {
		active, err := h.bridge.FocusState(h.ctx)
		require.NoError(t, err)
		assert.False(t, active)
	}

	assert.Equal(t, before, h.state(t))
	assert.Equal(t, relayouts, h.page.Relayouts())
}

func TestBridge_PushSettings(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.bridge.PushSettings(h.ctx, entity.FocusSettings{AutoActivate: true, BlockScroll: false}))

	var watcher entity.WatcherState
	require.NoError(t, h.loop.Do(h.ctx, func() { watcher = h.focus.WatcherState() }))
	assert.Equal(t, entity.WatcherEnabled, watcher)
	assert.False(t, h.page.HasMarker(entity.MarkerNoScroll))
}

func TestBridge_NoListener(t *testing.T) {
	b := bridge.New(func(fn func()) bool { fn(); return true })

	_, err := b.Request(context.Background(), messaging.Message{Type: messaging.TypeGetFocusState})
	assert.ErrorIs(t, err, port.ErrNoListener)
	assert.Empty(t, b.PageURL())

	assert.ErrorIs(t, b.NotifyFocusState(context.Background(), true), port.ErrNoListener)
}

func TestBridge_HostInvalidated(t *testing.T) {
	b := bridge.New(func(func()) bool { return false })
	b.Attach(messaging.NewRouter(), func() string { return watchURL })

	err := b.ToggleFocusMode(context.Background())
	assert.ErrorIs(t, err, port.ErrHostInvalidated)
	assert.True(t, port.IsDeliveryFailure(err))
}

func TestBridge_UnknownCommandGetsNoReply(t *testing.T) {
	h := newHarness(t)

	_, err := h.bridge.Request(h.ctx, messaging.Message{Type: "reloadPlayer"})
	assert.ErrorIs(t, err, bridge.ErrNoReply)
}

func TestBridge_Detach(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, watchURL, h.bridge.PageURL())

	h.bridge.Detach()

	assert.Empty(t, h.bridge.PageURL())
	_, err := h.bridge.FocusState(h.ctx)
	assert.ErrorIs(t, err, port.ErrNoListener)
}

func TestBridge_NotificationsReachSubscribers(t *testing.T) {
	h := newHarness(t)

	got := make(chan messaging.FocusStateNotification, 4)
	unsubscribe := h.bridge.Subscribe(func(n messaging.FocusStateNotification) {
		// Listeners may query back through the bridge.
		_, err := h.bridge.FocusState(h.ctx)
		assert.NoError(t, err)
		got <- n
	})

	require.NoError(t, h.bridge.ToggleFocusMode(h.ctx))

	select {
	case n := <-got:
		assert.Equal(t, messaging.TypeFocusModeState, n.Type)
		assert.True(t, n.IsActive)
	case <-time.After(2 * time.Second):
		t.Fatal("notification not delivered")
	}

	unsubscribe()
	unsubscribe()
	assert.ErrorIs(t, h.bridge.NotifyFocusState(h.ctx, false), port.ErrNoListener)
}
