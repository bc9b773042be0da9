package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/focusmode/internal/infrastructure/config"
	"github.com/bnema/focusmode/internal/infrastructure/schema"
)

var schemaWrite bool

var schemaCmd = &cobra.Command{
	Use:   "schema [config|settings|messages]",
	Short: "Print JSON schemas",
	Long: `Print the JSON schema of the config file, the stored settings or the
page/control-surface messages.

With --write, the schema is written next to config.toml instead, where
editors with TOML schema support pick it up.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: schema.Names(),
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write <name>.schema.json to the config directory")
}

func runSchema(_ *cobra.Command, args []string) error {
	name := schema.Config
	if len(args) > 0 {
		name = strings.ToLower(args[0])
	}

	if schemaWrite {
		if err := config.EnsureDirectories(); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
		dir, err := config.GetConfigDir()
		if err != nil {
			return fmt.Errorf("resolve config directory: %w", err)
		}
		path, err := schema.Write(dir, name)
		if err != nil {
			return err
		}
		fmt.Printf("Generated JSON schema: %s\n", path)
		return nil
	}

	data, err := schema.JSON(name)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
