package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/focusmode/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where focusmode keeps its files and the configuration in effect.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file, database and log locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, the config file and FOCUSMODE_*
environment overrides have been merged.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	configFile := "(built-in defaults)"
	if a.ConfigManager != nil {
		configFile = a.ConfigManager.GetConfigFile()
	} else if path, pathErr := config.GetConfigFile(); pathErr == nil {
		configFile = path + " (not loaded)"
	}

	t := a.Theme
	rows := [][2]string{
		{"config", configFile},
		{"database", a.Config.Database.Path},
		{"logs", a.Config.Logging.LogDir},
	}
	for _, row := range rows {
		fmt.Printf("%s %s\n", t.Subtle.Render(fmt.Sprintf("%-9s", row[0])), t.Normal.Render(row[1]))
	}
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(a.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
