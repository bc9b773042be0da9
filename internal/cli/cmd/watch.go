package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/focusmode/internal/bootstrap"
	"github.com/bnema/focusmode/internal/infrastructure/config"
	"github.com/bnema/focusmode/internal/infrastructure/playwright"
	"github.com/bnema/focusmode/internal/logging"
)

var (
	watchHeadless bool
	watchInstall  bool
	watchSurface  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [url]",
	Short: "Drive Chromium with focus mode through Playwright",
	Long: `Launch Chromium through Playwright with the focus mode script injected
into every document.

Use --install on first run to download the browser. In headless mode the
control surface is the only way to toggle focus mode, so --surface is
implied.

Examples:
  focusmode watch --install
  focusmode watch youtube.com/watch?v=dQw4w9WgXcQ
  focusmode watch --headless youtube.com/watch?v=dQw4w9WgXcQ`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{annotationTUI: "surface"},
	PreRun: func(cmd *cobra.Command, _ []string) {
		if watchHeadless && !cmd.Flags().Changed("surface") {
			watchSurface = true
		}
	},
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchHeadless, "headless", false, "run Chromium without a window")
	watchCmd.Flags().BoolVar(&watchInstall, "install", false, "download the Playwright driver and Chromium first")
	watchCmd.Flags().BoolVarP(&watchSurface, "surface", "s", false, "show the control surface in this terminal")
}

func runWatch(_ *cobra.Command, args []string) error {
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

	host, err := playwright.Start(ctx, playwright.Options{
		Focus:    a.Config.Focus,
		Settings: a.Settings,
		Headless: watchHeadless,
		Width:    a.Config.Window.Width,
		Height:   a.Config.Window.Height,
		Install:  watchInstall,
	})
	if err != nil {
		return fmt.Errorf("start browser: %w", err)
	}
	defer host.Close()
	timer.Mark("browser")

	startURL := defaultStartURL
	if len(args) > 0 {
		startURL = normalizeURL(args[0])
	}
	if err := host.Navigate(startURL); err != nil {
		return err
	}
	timer.Mark("navigate")
	timer.Log(ctx)

	watchConfig(a, func(cfg *config.Config) {
		if err := host.UpdateFocusConfig(cfg.Focus); err != nil {
			log.Warn().Err(err).Msg("failed to apply reloaded focus config")
		}
	})

	if !watchSurface {
		host.Wait(ctx)
		return nil
	}

	surf := startSurface(ctx, a, host.Bridge(), nil, "focusmode · watch")
	waitCtx, cancelWait := contextDone(ctx, surf.Done())
	defer cancelWait()
	host.Wait(waitCtx)
	return surf.Stop()
}
