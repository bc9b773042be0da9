package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/focusmode/internal/app/focushost"
	"github.com/bnema/focusmode/internal/cli"
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Try focus mode against a simulated video page",
	Long: `Run the focus controller against an in-memory video page and drive it
from the control surface. No browser is needed.

Simulation keys:
  n  navigate to the next video in place
  p  play or pause the player
  i  insert a paused player
  x  remove the player
  m  fire an unrelated DOM change

The stored settings are used and changed exactly as in a browser.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationTUI: ""},
	RunE:        runSim,
}

func init() {
	rootCmd.AddCommand(simCmd)
}

func runSim(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	if err := a.Warm(ctx); err != nil {
		return err
	}

	opts, err := focushost.FocusOptions(a.Config.Focus)
	if err != nil {
		return err
	}
	sim, err := cli.NewSimulator(ctx, opts, a.Settings)
	if err != nil {
		return err
	}
	defer sim.Close()

	surf := startSurface(ctx, a, sim.Bridge(), sim, "focusmode · simulator")
	<-surf.Done()
	return surf.Stop()
}
