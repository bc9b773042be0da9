// Package webkit hosts focus mode inside a WebKitGTK web view.
package webkit

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/focusmode/internal/app/bridge"
	"github.com/bnema/focusmode/internal/app/focushost"
	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/domain/repository"
	"github.com/bnema/focusmode/internal/infrastructure/config"
	"github.com/bnema/focusmode/internal/infrastructure/pagescript"
	"github.com/bnema/focusmode/internal/logging"
)

const hostName = "webkit"

// Options configures a Host.
type Options struct {
	Focus    config.FocusConfig
	Settings repository.FocusSettingsRepository
}

// Host owns one web view and its focus session. Everything except Post
// must be called on the GTK main thread.
type Host struct {
	ctx     context.Context
	view    *webkit.WebView
	ucm     *webkit.UserContentManager
	session *focushost.Session
	bridge  *bridge.Bridge
	closed  atomic.Bool
}

// NewHost creates a web view with the page script installed.
func NewHost(ctx context.Context, opts Options) (*Host, error) {
	sessionOpts, err := focushost.FocusOptions(opts.Focus)
	if err != nil {
		return nil, err
	}

	view := webkit.NewWebView()
	if view == nil {
		return nil, ErrViewUnavailable
	}
	ucm := view.UserContentManager()
	if ucm == nil {
		return nil, ErrViewUnavailable
	}

	h := &Host{
		ctx:  logging.WithComponent(ctx, hostName),
		view: view,
		ucm:  ucm,
	}
	h.bridge = bridge.New(h.Post)

	if err := h.installAssets(opts.Focus); err != nil {
		return nil, err
	}
	if !ucm.RegisterScriptMessageHandler(focushost.HandlerName, "") {
		return nil, ErrHandlerRegistration
	}

	sessionOpts.HostName = hostName
	sessionOpts.Settings = opts.Settings
	sessionOpts.Bridge = h.bridge
	sessionOpts.Post = h.Post
	h.session = focushost.NewSession(pagescript.EvaluatorFunc(h.eval), sessionOpts)

	ucm.ConnectScriptMessageReceived(h.onScriptMessage)
	view.Connect("notify::uri", func() {
		h.session.SetURL(view.URI())
	})
	view.ConnectWebProcessTerminated(func(reason webkit.WebProcessTerminationReason) {
		logging.FromContext(h.ctx).Warn().
			Str("reason", terminationReason(reason)).
			Msg("web process terminated")
		h.session.Reset(h.ctx)
	})

	logging.FromContext(h.ctx).Debug().Msg("web view created")
	return h, nil
}

// View returns the underlying widget.
func (h *Host) View() *webkit.WebView {
	return h.view
}

// Bridge returns the control-surface channel of this view. Safe from any
// goroutine.
func (h *Host) Bridge() *bridge.Bridge {
	return h.bridge
}

// Load navigates the view.
func (h *Host) Load(uri string) {
	h.view.LoadURI(uri)
}

// Post schedules fn on the GTK main loop. Safe from any goroutine. Returns
// false once the host is closed.
func (h *Host) Post(fn func()) bool {
	if h.closed.Load() {
		return false
	}
	glib.IdleAdd(func() bool {
		if !h.closed.Load() {
			fn()
		}
		return false
	})
	return true
}

// UpdateFocusConfig applies a reloaded focus config. Key bindings take effect
// immediately; script and stylesheet changes apply from the next document.
func (h *Host) UpdateFocusConfig(cfg config.FocusConfig) error {
	keys, err := cfg.Keys()
	if err != nil {
		return err
	}

	h.ucm.RemoveAllScripts()
	h.ucm.RemoveAllStyleSheets()
	if err := h.installAssets(cfg); err != nil {
		return err
	}

	h.session.SetKeyBindings(keys.Toggle, keys.Exit)
	logging.FromContext(h.ctx).Info().Msg("focus config reloaded")
	return nil
}

// Close tears down the session and stops accepting posted work.
func (h *Host) Close() {
	if !h.closed.CompareAndSwap(false, true) {
		return
	}
	h.session.Close(h.ctx)
	h.ucm.UnregisterScriptMessageHandler(focushost.HandlerName, "")
}

func (h *Host) installAssets(cfg config.FocusConfig) error {
	script, css, err := focushost.PageAssets(cfg)
	if err != nil {
		return fmt.Errorf("page assets: %w", err)
	}

	h.ucm.AddScript(webkit.NewUserScript(
		script,
		webkit.UserContentInjectTopFrame,
		webkit.UserScriptInjectAtDocumentEnd,
		nil,
		nil,
	))

	stylesheet := webkit.NewUserStyleSheet(
		css,
		webkit.UserContentInjectTopFrame,
		webkit.UserStyleLevelUser,
		nil,
		nil,
	)
	if stylesheet == nil {
		logging.FromContext(h.ctx).Warn().Msg("failed to create focus stylesheet")
	} else {
		h.ucm.AddStyleSheet(stylesheet)
	}
	return nil
}

func (h *Host) onScriptMessage(value *javascriptcore.Value) {
	if value == nil || h.closed.Load() {
		return
	}
	h.session.HandleMessage(h.ctx, []byte(value.ToString()))
}

// eval runs script without waiting for its result. Failures are logged from
// the completion callback.
func (h *Host) eval(ctx context.Context, script string) error {
	if h.closed.Load() {
		return port.ErrPageClosed
	}

	log := logging.FromContext(ctx)
	h.view.EvaluateJavascript(context.Background(), script, -1, "", "", func(res gio.AsyncResulter) {
		if _, err := h.view.EvaluateJavascriptFinish(res); err != nil {
			mapped, signature := classifyEvalError(err)
			if mapped == nil || port.IsDeliveryFailure(mapped) {
				log.Trace().Err(mapped).Str("signature", signature).Msg("page call dropped")
				return
			}
			log.Warn().Err(mapped).Str("signature", signature).Msg("page call failed")
		}
	})
	return nil
}
