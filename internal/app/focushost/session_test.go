package focushost_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/focusmode/internal/app/bridge"
	"github.com/bnema/focusmode/internal/app/focushost"
	"github.com/bnema/focusmode/internal/application/usecase"
	"github.com/bnema/focusmode/internal/domain/entity"
	repomocks "github.com/bnema/focusmode/internal/domain/repository/mocks"
	"github.com/bnema/focusmode/internal/logging"
)

const watchURL = "https://www.youtube.com/watch?v=abc"

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type recorder struct {
	scripts []string
}

func (r *recorder) Eval(_ context.Context, script string) error {
	r.scripts = append(r.scripts, script)
	return nil
}

func (r *recorder) count(substr string) int {
	n := 0
	for _, s := range r.scripts {
		if strings.Contains(s, substr) {
			n++
		}
	}
	return n
}

// inline runs posted work immediately.
func inline(fn func()) bool {
	fn()
	return true
}

func newSession(t *testing.T, settings entity.FocusSettings) (*focushost.Session, *recorder, *bridge.Bridge) {
	t.Helper()

	repo := repomocks.NewMockFocusSettingsRepository(t)
	repo.EXPECT().Get(mock.Anything, mock.Anything).Return(settings, nil).Maybe()

	toggle, _ := entity.ParseKeyChord("alt+f")
	exit, _ := entity.ParseKeyChord("escape")

	rec := &recorder{}
	b := bridge.New(inline)
	s := focushost.NewSession(rec, focushost.Options{
		HostName: "test",
		Focus:    usecase.FocusModeOptions{ContentParam: "v", ToggleKey: toggle, ExitKey: exit},
		MatchURL: "youtube.com/watch",
		Settings: repo,
		Bridge:   b,
		Post:     inline,
	})
	return s, rec, b
}

func TestSession_AttachesOnFocusPage(t *testing.T) {
	ctx := testContext()
	s, rec, b := newSession(t, entity.DefaultFocusSettings())

	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`"}`))

	require.NotNil(t, s.Controller())
	assert.Equal(t, watchURL, b.PageURL())
	assert.Equal(t, 1, rec.count(`setMarker("no-scroll", true)`))
}

func TestSession_IgnoresOtherPages(t *testing.T) {
	ctx := testContext()
	s, rec, b := newSession(t, entity.DefaultFocusSettings())

	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"https://www.youtube.com/feed/subscriptions"}`))
	s.HandleMessage(ctx, []byte(`{"kind":"key","code":"KeyF","alt":true}`))

	assert.Nil(t, s.Controller())
	assert.Empty(t, b.PageURL())
	assert.Empty(t, rec.scripts)
}

func TestSession_KeyToggle(t *testing.T) {
	ctx := testContext()
	s, rec, _ := newSession(t, entity.DefaultFocusSettings())
	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`"}`))

	s.HandleMessage(ctx, []byte(`{"kind":"key","url":"`+watchURL+`","code":"KeyF","alt":true}`))
	assert.True(t, s.Controller().IsActive())
	assert.Equal(t, 1, rec.count(`setMarker("focus-mode", true)`))
	assert.Equal(t, 1, rec.count("relayout()"))

	s.HandleMessage(ctx, []byte(`{"kind":"key","url":"`+watchURL+`","code":"Escape"}`))
	assert.False(t, s.Controller().IsActive())
}

func TestSession_AutoActivateThroughStructure(t *testing.T) {
	ctx := testContext()
	s, rec, _ := newSession(t, entity.FocusSettings{AutoActivate: true, BlockScroll: true})

	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`","present":false}`))
	assert.Equal(t, 1, rec.count("observe(true)"))
	assert.False(t, s.Controller().IsActive())

	s.HandleMessage(ctx, []byte(`{"kind":"structure","url":"`+watchURL+`","present":true,"playing":true}`))
	assert.True(t, s.Controller().IsActive())
}

func TestSession_PlayStartsAutoActivation(t *testing.T) {
	ctx := testContext()
	s, _, _ := newSession(t, entity.FocusSettings{AutoActivate: true, BlockScroll: false})
	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`","present":true}`))
	require.False(t, s.Controller().IsActive())

	s.HandleMessage(ctx, []byte(`{"kind":"play","url":"`+watchURL+`","present":true,"playing":true}`))
	assert.True(t, s.Controller().IsActive())
}

func TestSession_ArmingAfterPauseStaysOff(t *testing.T) {
	ctx := testContext()
	s, _, b := newSession(t, entity.DefaultFocusSettings())
	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`","present":true}`))
	s.HandleMessage(ctx, []byte(`{"kind":"play","url":"`+watchURL+`","present":true,"playing":true}`))
	s.HandleMessage(ctx, []byte(`{"kind":"pause","url":"`+watchURL+`","present":true,"playing":false}`))
	require.False(t, s.Controller().IsActive())

	require.NoError(t, b.PushSettings(ctx, entity.FocusSettings{AutoActivate: true, BlockScroll: true}))
	assert.False(t, s.Controller().IsActive())

	s.HandleMessage(ctx, []byte(`{"kind":"play","url":"`+watchURL+`","present":true,"playing":true}`))
	assert.True(t, s.Controller().IsActive())
}

func TestSession_NewDocumentResetsState(t *testing.T) {
	ctx := testContext()
	s, rec, _ := newSession(t, entity.FocusSettings{AutoActivate: true, BlockScroll: true})
	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`"}`))
	first := s.Controller()
	first.Toggle(ctx, entity.TriggerManual)

	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`"}`))

	assert.NotSame(t, first, s.Controller())
	assert.False(t, s.Controller().IsActive())
	assert.Equal(t, 1, rec.count("observe(false)"), "old watcher disposed")
}

func TestSession_BridgeRoundTrip(t *testing.T) {
	ctx := testContext()
	s, _, b := newSession(t, entity.DefaultFocusSettings())
	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`"}`))

	require.NoError(t, b.ToggleFocusMode(ctx))
	active, err := b.FocusState(ctx)
	require.NoError(t, err)
	assert.True(t, active)

	s.Close(ctx)
	_, err = b.FocusState(ctx)
	assert.Error(t, err)
}

func TestSession_MalformedMessage(t *testing.T) {
	ctx := testContext()
	s, rec, _ := newSession(t, entity.DefaultFocusSettings())

	s.HandleMessage(ctx, []byte(`{`))
	s.HandleMessage(ctx, []byte(`{"url":"`+watchURL+`"}`))

	assert.Nil(t, s.Controller())
	assert.Empty(t, rec.scripts)
}

func TestSession_SetKeyBindings(t *testing.T) {
	ctx := testContext()
	s, _, _ := newSession(t, entity.DefaultFocusSettings())

	toggle, _ := entity.ParseKeyChord("ctrl+k")
	exit, _ := entity.ParseKeyChord("q")
	s.SetKeyBindings(toggle, exit)

	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`"}`))
	s.HandleMessage(ctx, []byte(`{"kind":"key","code":"KeyF","alt":true}`))
	assert.False(t, s.Controller().IsActive())
	s.HandleMessage(ctx, []byte(`{"kind":"key","code":"KeyK","ctrl":true}`))
	assert.True(t, s.Controller().IsActive())
}

func TestSession_ResetKeepsSessionUsable(t *testing.T) {
	ctx := testContext()
	s, _, b := newSession(t, entity.DefaultFocusSettings())
	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`"}`))

	s.Reset(ctx)
	assert.Nil(t, s.Controller())
	assert.Empty(t, b.PageURL())

	s.HandleMessage(ctx, []byte(`{"kind":"ready","url":"`+watchURL+`"}`))
	assert.NotNil(t, s.Controller())
}
