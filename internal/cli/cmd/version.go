package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/focusmode/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		t := a.Theme

		fmt.Println(t.Title.Render("focusmode " + a.BuildInfo.Version))
		fmt.Println(t.Subtle.Render(fmt.Sprintf("commit %s, built %s with %s",
			a.BuildInfo.Commit, a.BuildInfo.BuildDate, a.BuildInfo.GoVersion)))
		fmt.Println(t.Subtle.Render(build.RepoURL()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
