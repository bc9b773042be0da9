// Package cmd provides Cobra CLI commands for focusmode.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/focusmode/internal/cli"
	"github.com/bnema/focusmode/internal/domain/build"
)

// annotationTUI marks commands that run the terminal surface. The value
// names the bool flag that enables it; an empty value means always.
const annotationTUI = "focusmode/tui"

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "focusmode",
		Short: "Distraction-free focus mode for video pages",
		Long: `Focusmode - hide everything on a video page except the player.

Focus mode hooks a page script into a browser view. Toggle it with a
shortcut or from the terminal control surface, or let it turn on by itself
when a video starts playing.

Hosts:
  browse   WebKitGTK window
  watch    Chromium driven through Playwright
  sim      in-memory page, no browser needed

Settings are stored in a local SQLite database and shared by every host.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{LogToFile: usesTUI(cmd)})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func usesTUI(cmd *cobra.Command) bool {
	flag, ok := cmd.Annotations[annotationTUI]
	if !ok {
		return false
	}
	if flag == "" {
		return true
	}
	on, err := cmd.Flags().GetBool(flag)
	return err == nil && on
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
