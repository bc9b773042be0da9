// Package playwright hosts focus mode in a Playwright-driven Chromium page.
// It runs the same page script as the WebKitGTK host and serializes all
// controller work on a mainloop.Loop.
package playwright

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/playwright-community/playwright-go"

	"github.com/bnema/focusmode/internal/app/bridge"
	"github.com/bnema/focusmode/internal/app/focushost"
	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/domain/repository"
	"github.com/bnema/focusmode/internal/infrastructure/config"
	"github.com/bnema/focusmode/internal/infrastructure/pagescript"
	"github.com/bnema/focusmode/internal/logging"
	"github.com/bnema/focusmode/internal/ui/mainloop"
)

const (
	hostName = "playwright"
	// postBinding is the page-global function the page script posts through
	// when no WebKit message handler exists.
	postBinding = "__focusmodePost"
)

// Options configures a Host.
type Options struct {
	Focus    config.FocusConfig
	Settings repository.FocusSettingsRepository
	Headless bool
	Width    int
	Height   int
	// Install downloads the browser driver before starting.
	Install bool
}

// Host owns one Chromium page and its focus session.
type Host struct {
	ctx     context.Context
	cancel  context.CancelFunc
	loop    *mainloop.Loop
	evals   *mainloop.Loop
	session *focushost.Session
	bridge  *bridge.Bridge
	closed  atomic.Bool

	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
}

// Start launches Chromium and prepares a page with the focus script. The
// returned host is ready for Navigate.
func Start(ctx context.Context, opts Options) (*Host, error) {
	sessionOpts, err := focushost.FocusOptions(opts.Focus)
	if err != nil {
		return nil, err
	}
	script, css, err := focushost.PageAssets(opts.Focus)
	if err != nil {
		return nil, err
	}

	runOpts := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}
	if opts.Install {
		if err := playwright.Install(runOpts); err != nil {
			return nil, fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: opts.Width, Height: opts.Height},
	})
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	hostCtx, cancel := context.WithCancel(logging.WithComponent(ctx, hostName))
	h := &Host{
		ctx:     hostCtx,
		cancel:  cancel,
		loop:    mainloop.NewLoop(),
		evals:   mainloop.NewLoop(),
		pw:      pw,
		browser: browser,
		page:    page,
	}
	go h.loop.Run(hostCtx)
	go h.evals.Run(hostCtx)

	h.bridge = bridge.New(h.Post)
	sessionOpts.HostName = hostName
	sessionOpts.Settings = opts.Settings
	sessionOpts.Bridge = h.bridge
	sessionOpts.Post = h.Post
	h.session = focushost.NewSession(pagescript.EvaluatorFunc(h.eval), sessionOpts)

	if err := h.install(script, css); err != nil {
		h.Close()
		return nil, err
	}
	return h, nil
}

func (h *Host) install(script, css string) error {
	err := h.page.ExposeFunction(postBinding, func(args ...interface{}) interface{} {
		payload, ok := firstString(args)
		if !ok {
			return nil
		}
		h.Post(func() {
			h.session.HandleMessage(h.ctx, []byte(payload))
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("expose %s: %w", postBinding, err)
	}

	if err := h.page.AddInitScript(playwright.Script{
		Content: playwright.String(InitScript(script, css)),
	}); err != nil {
		return fmt.Errorf("add init script: %w", err)
	}

	h.page.On("framenavigated", func(frame playwright.Frame) {
		if frame != h.page.MainFrame() {
			return
		}
		url := frame.URL()
		h.Post(func() {
			h.session.SetURL(url)
		})
	})
	return nil
}

// Bridge returns the control-surface channel of this page.
func (h *Host) Bridge() *bridge.Bridge {
	return h.bridge
}

// Post schedules fn on the host's main loop.
func (h *Host) Post(fn func()) bool {
	if h.closed.Load() {
		return false
	}
	return h.loop.Post(fn)
}

// UpdateFocusConfig applies reloaded key bindings. The init script is fixed
// for the page's lifetime, so other focus settings need a restart.
func (h *Host) UpdateFocusConfig(cfg config.FocusConfig) error {
	keys, err := cfg.Keys()
	if err != nil {
		return err
	}
	if !h.Post(func() {
		h.session.SetKeyBindings(keys.Toggle, keys.Exit)
	}) {
		return port.ErrPageClosed
	}
	logging.FromContext(h.ctx).Info().Msg("focus key bindings reloaded")
	return nil
}

// Navigate loads url and waits for the DOM to be ready.
func (h *Host) Navigate(url string) error {
	_, err := h.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

// Evaluate runs expression in the page and returns its result.
func (h *Host) Evaluate(expression string) (any, error) {
	return h.page.Evaluate(expression)
}

// Wait blocks until ctx is done or the page closes.
func (h *Host) Wait(ctx context.Context) {
	closed := make(chan struct{})
	h.page.Once("close", func() { close(closed) })
	select {
	case <-ctx.Done():
	case <-closed:
	case <-h.ctx.Done():
	}
}

// Close tears down the session, the page and the driver.
func (h *Host) Close() {
	if h.closed.Load() {
		return
	}
	closeCtx := context.WithoutCancel(h.ctx)
	h.loop.Finish(func() {
		h.session.Close(closeCtx)
	})
	h.closed.Store(true)

	h.cancel()
	h.loop.Close()
	h.evals.Close()

	log := logging.FromContext(h.ctx)
	if err := h.browser.Close(); err != nil {
		log.Debug().Err(err).Msg("browser close failed")
	}
	if err := h.pw.Stop(); err != nil {
		log.Debug().Err(err).Msg("playwright stop failed")
	}
}

// eval queues script on the evaluation loop so calls reach the page in the
// order they were made without blocking the main loop.
func (h *Host) eval(ctx context.Context, script string) error {
	if h.closed.Load() {
		return port.ErrPageClosed
	}
	log := logging.FromContext(ctx)
	call := func() {
		if _, err := h.page.Evaluate(script); err != nil {
			if isNavigationError(err) {
				log.Trace().Err(err).Msg("page call dropped")
				return
			}
			log.Warn().Err(err).Msg("page call failed")
		}
	}
	if !h.evals.Post(call) {
		// The evaluation loop stops with the host context; teardown calls
		// still reach the page until Close.
		call()
	}
	return nil
}

// InitScript wraps the page script so it runs once the DOM is parsed and
// installs the focus stylesheet alongside it.
func InitScript(script, css string) string {
	var b strings.Builder
	b.WriteString("(function () {\n  var run = function () {\n")
	b.WriteString("    var style = document.createElement(\"style\");\n")
	b.WriteString("    style.textContent = ")
	b.WriteString(jsString(css))
	b.WriteString(";\n    (document.head || document.documentElement).appendChild(style);\n")
	b.WriteString(script)
	b.WriteString("\n  };\n")
	b.WriteString("  if (document.readyState === \"loading\") {\n")
	b.WriteString("    document.addEventListener(\"DOMContentLoaded\", run, { once: true });\n")
	b.WriteString("  } else {\n    run();\n  }\n})();\n")
	return b.String()
}

func firstString(args []interface{}) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	s, ok := args[0].(string)
	return s, ok
}

func jsString(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

// isNavigationError reports failures caused by the document going away
// while a call was in flight.
func isNavigationError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "execution context was destroyed") ||
		strings.Contains(msg, "target closed") ||
		strings.Contains(msg, "targetclosederror")
}
