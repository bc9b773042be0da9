// Package focushost binds the focus controller to a scripted browser page.
// Each host (WebKitGTK, Playwright) owns one Session per view and feeds it
// the page script's messages on its main loop.
package focushost

import (
	"context"

	"github.com/bnema/focusmode/internal/app/bridge"
	"github.com/bnema/focusmode/internal/app/messaging"
	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/application/usecase"
	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/domain/repository"
	"github.com/bnema/focusmode/internal/infrastructure/pagescript"
	"github.com/bnema/focusmode/internal/logging"
	"github.com/bnema/focusmode/internal/ui/mainloop"
)

const structureKey = "structure"

// Options configures a Session.
type Options struct {
	// HostName labels log lines, e.g. "webkit" or "playwright".
	HostName string
	Focus    usecase.FocusModeOptions
	MatchURL string
	Settings repository.FocusSettingsRepository
	// Bridge connects control surfaces; may be nil.
	Bridge *bridge.Bridge
	// Post schedules work on the host's main loop.
	Post func(func()) bool
}

// Session tracks the page instance of one view. A new document (the page
// script's "ready" signal) starts a fresh controller, so mode state never
// outlives the document it was created for.
type Session struct {
	opts      Options
	eval      pagescript.Evaluator
	coalescer *mainloop.Coalescer

	page  *pagescript.Page
	focus *usecase.FocusModeUseCase
}

// NewSession creates a session evaluating page calls through eval.
func NewSession(eval pagescript.Evaluator, opts Options) *Session {
	s := &Session{opts: opts, eval: eval}
	s.coalescer = mainloop.NewCoalescer(func(fn func()) { opts.Post(fn) })
	return s
}

// HandleMessage processes one raw page script message. Must run on the
// host's main loop.
func (s *Session) HandleMessage(ctx context.Context, payload []byte) {
	log := logging.FromContext(ctx)

	sig, err := pagescript.ParseSignal(payload)
	if err != nil {
		log.Warn().Err(err).Msg("dropping malformed page signal")
		return
	}

	if sig.Kind == pagescript.KindReady {
		s.attach(ctx, sig)
		return
	}
	if s.page == nil {
		log.Trace().Str("kind", sig.Kind).Msg("signal from page without controller")
		return
	}

	s.page.Update(sig)

	switch sig.Kind {
	case pagescript.KindStructure:
		page := s.page
		s.coalescer.Post(structureKey, page.NotifyStructure)
	case pagescript.KindPlay:
		s.focus.OnPlaybackStarted(ctx)
	case pagescript.KindPause:
		log.Trace().Bool("playing", sig.Playing).Msg("playback paused")
	case pagescript.KindKey:
		s.focus.HandleKey(ctx, sig.KeyPress())
	case pagescript.KindLocation:
		log.Debug().Str("url", sig.URL).Msg("page location changed")
	default:
		log.Debug().Str("kind", sig.Kind).Msg("ignoring unknown page signal")
	}
}

// SetURL records a location change reported by the host.
func (s *Session) SetURL(url string) {
	if s.page != nil {
		s.page.SetURL(url)
	}
}

// SetKeyBindings updates the shortcuts of the current and future controllers.
func (s *Session) SetKeyBindings(toggle, exit entity.KeyChord) {
	s.opts.Focus.ToggleKey = toggle
	s.opts.Focus.ExitKey = exit
	if s.focus != nil {
		s.focus.SetKeyBindings(toggle, exit)
	}
}

// Controller returns the live controller, or nil off focus pages.
func (s *Session) Controller() *usecase.FocusModeUseCase {
	return s.focus
}

// Reset drops the current page instance without closing the session, e.g.
// after the renderer process died.
func (s *Session) Reset(ctx context.Context) {
	s.detach(ctx)
}

// Close tears down the current page instance.
func (s *Session) Close(ctx context.Context) {
	s.coalescer.Destroy()
	s.detach(ctx)
}

func (s *Session) attach(ctx context.Context, sig pagescript.Signal) {
	log := logging.FromContext(ctx)
	s.detach(ctx)

	if !entity.MatchesFocusPage(sig.URL, s.opts.MatchURL) {
		log.Debug().Str("url", sig.URL).Msg("not a focus page, controller not attached")
		return
	}

	var notifier port.FocusNotifier
	if s.opts.Bridge != nil {
		notifier = s.opts.Bridge
	}

	s.page = pagescript.NewPage(s.eval, sig.URL)
	s.page.Update(sig)
	s.focus = usecase.NewFocusModeUseCase(s.page, notifier, s.opts.Settings, s.opts.Focus)

	ctx = logging.WithPage(ctx, s.opts.HostName, sig.URL)
	s.focus.Start(ctx)

	if s.opts.Bridge != nil {
		s.opts.Bridge.Attach(messaging.NewFocusRouter(s.focus), s.page.URL)
	}
	log.Info().Str("url", sig.URL).Msg("focus controller attached")
}

func (s *Session) detach(ctx context.Context) {
	if s.focus == nil {
		return
	}
	if s.opts.Bridge != nil {
		s.opts.Bridge.Detach()
	}
	s.focus.Close(ctx)
	s.page.Close()
	s.focus = nil
	s.page = nil
}
