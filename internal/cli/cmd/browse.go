package cmd

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/focusmode/internal/bootstrap"
	"github.com/bnema/focusmode/internal/cli"
	"github.com/bnema/focusmode/internal/infrastructure/config"
	"github.com/bnema/focusmode/internal/infrastructure/webkit"
	"github.com/bnema/focusmode/internal/logging"
)

const defaultStartURL = "https://www.youtube.com/"

var browseSurface bool

var browseCmd = &cobra.Command{
	Use:   "browse [url]",
	Short: "Open a WebKitGTK window with focus mode",
	Long: `Open a WebKitGTK window with the focus mode script installed.

Press the toggle key (alt+f by default) on a video page to enter focus
mode and the exit key (escape) to leave it. With --surface, the terminal
shows the control surface for the page in the window.

Examples:
  focusmode browse
  focusmode browse youtube.com/watch?v=dQw4w9WgXcQ
  focusmode browse --surface`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationTUI: "surface"},
	RunE:        runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().BoolVarP(&browseSurface, "surface", "s", false, "show the control surface in this terminal")
}

func runBrowse(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(a.Ctx(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	timer := bootstrap.NewStartupTimer()
	if err := a.Warm(ctx); err != nil {
		return err
	}
	timer.Mark("warm")

	startURL := defaultStartURL
	if len(args) > 0 {
		startURL = normalizeURL(args[0])
	}

	var surf *surface
	status := webkit.RunWindow(ctx,
		webkit.WindowOptions{
			Title:  "focusmode",
			Width:  a.Config.Window.Width,
			Height: a.Config.Window.Height,
			URL:    startURL,
		},
		webkit.Options{Focus: a.Config.Focus, Settings: a.Settings},
		func(host *webkit.Host) {
			timer.Mark("window")
			timer.Log(ctx)

			watchConfig(a, func(cfg *config.Config) {
				host.Post(func() {
					if err := host.UpdateFocusConfig(cfg.Focus); err != nil {
						log.Warn().Err(err).Msg("failed to apply reloaded focus config")
					}
				})
			})

			if browseSurface {
				surf = startSurface(ctx, a, host.Bridge(), nil, "focusmode · browse")
			}
		},
	)

	if surf != nil {
		if err := surf.Stop(); err != nil {
			log.Warn().Err(err).Msg("control surface exited with error")
		}
	}
	if status != 0 {
		return fmt.Errorf("browser exited with status %d", status)
	}
	return nil
}

// watchConfig reloads the config file on change and hands the result to fn.
// A no-op when the app runs on built-in defaults.
func watchConfig(a *cli.App, fn func(*config.Config)) {
	if a.ConfigManager == nil {
		return
	}
	a.ConfigManager.OnConfigChange(fn)
	a.ConfigManager.Watch()
}

// normalizeURL adds https:// to bare hosts.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultStartURL
	}
	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "about:") {
		return raw
	}
	return "https://" + raw
}
