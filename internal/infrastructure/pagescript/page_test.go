package pagescript_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/infrastructure/pagescript"
)

type recorder struct {
	scripts []string
	err     error
}

func (r *recorder) Eval(_ context.Context, script string) error {
	r.scripts = append(r.scripts, script)
	return r.err
}

func TestParseSignal(t *testing.T) {
	sig, err := pagescript.ParseSignal([]byte(`{"kind":"key","url":"https://x/watch?v=1","code":"KeyF","alt":true}`))
	require.NoError(t, err)
	assert.Equal(t, pagescript.KindKey, sig.Kind)
	assert.Equal(t, entity.KeyPress{Code: "KeyF", Modifiers: entity.ModAlt}, sig.KeyPress())

	_, err = pagescript.ParseSignal([]byte(`{"url":"x"}`))
	assert.Error(t, err)

	_, err = pagescript.ParseSignal([]byte(`not json`))
	assert.Error(t, err)
}

func TestSignal_PlaybackRequiresPresence(t *testing.T) {
	sig := pagescript.Signal{Present: false, Playing: true}
	assert.Equal(t, entity.PlaybackState{}, sig.Playback())
}

func TestPage_MarkersAndRelayout(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	page := pagescript.NewPage(rec, "https://www.youtube.com/watch?v=abc")

	require.NoError(t, page.SetMarker(ctx, entity.MarkerFocusMode, true))
	require.NoError(t, page.SetMarker(ctx, entity.MarkerNoScroll, false))
	require.NoError(t, page.Relayout(ctx))

	assert.Equal(t, []string{
		`window.__focusmode && window.__focusmode.setMarker("focus-mode", true);`,
		`window.__focusmode && window.__focusmode.setMarker("no-scroll", false);`,
		`window.__focusmode && window.__focusmode.relayout();`,
	}, rec.scripts)
}

func TestPage_ObserveStructure(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	page := pagescript.NewPage(rec, "https://www.youtube.com/watch?v=abc")

	var calls []int
	sub1, err := page.ObserveStructure(ctx, func() { calls = append(calls, 1) })
	require.NoError(t, err)
	sub2, err := page.ObserveStructure(ctx, func() { calls = append(calls, 2) })
	require.NoError(t, err)
	assert.Equal(t, []string{`window.__focusmode && window.__focusmode.observe(true);`}, rec.scripts)

	page.NotifyStructure()
	assert.Equal(t, []int{1, 2}, calls)

	sub1.Stop()
	sub1.Stop()
	assert.Len(t, rec.scripts, 1, "observer stays while a subscription is live")

	sub2.Stop()
	assert.Equal(t, `window.__focusmode && window.__focusmode.observe(false);`, rec.scripts[len(rec.scripts)-1])
	assert.Zero(t, page.Observers())
}

func TestPage_ObserveFailureLeavesNoSubscription(t *testing.T) {
	rec := &recorder{err: port.ErrHostInvalidated}
	page := pagescript.NewPage(rec, "https://www.youtube.com/watch?v=abc")

	_, err := page.ObserveStructure(context.Background(), func() {})
	assert.ErrorIs(t, err, port.ErrHostInvalidated)
	assert.Zero(t, page.Observers())
}

func TestPage_UpdateAndClose(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	page := pagescript.NewPage(rec, "https://www.youtube.com/watch?v=abc")

	page.Update(pagescript.Signal{Kind: pagescript.KindStructure, URL: "https://www.youtube.com/watch?v=xyz", Present: true, Playing: true})
	assert.Equal(t, "https://www.youtube.com/watch?v=xyz", page.URL())
	assert.Equal(t, entity.PlaybackState{Present: true, Playing: true}, page.Playback())

	page.Close()
	assert.ErrorIs(t, page.SetMarker(ctx, entity.MarkerFocusMode, true), port.ErrPageClosed)
	_, err := page.ObserveStructure(ctx, func() {})
	assert.ErrorIs(t, err, port.ErrPageClosed)
}
