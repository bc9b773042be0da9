package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/focusmode/internal/cli/styles"
	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/infrastructure/persistence/sqlite"
)

const (
	settingAutoActivate = "auto-activate"
	settingBlockScroll  = "block-scroll"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the stored focus settings",
	Long: `Show the focus settings shared by every host.

Pages pick up changes made here when they next load; use a control surface
to change the settings of an open page immediately.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <on|off>",
	Short: "Change a focus setting",
	Long: `Change a focus setting.

Keys:
  auto-activate  turn focus mode on when a video starts playing
  block-scroll   prevent page scrolling while focus mode is on`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{settingAutoActivate, settingBlockScroll},
	RunE:      runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default focus settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	settings, err := a.Settings.Get(ctx, entity.DefaultFocusSettings())
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	source := a.DB.Path()
	if db, dbErr := a.DB.DB(ctx); dbErr == nil {
		if version, vErr := sqlite.GetMigrationStatus(ctx, db); vErr == nil {
			source = fmt.Sprintf("%s (schema v%d)", source, version)
		}
	}

	renderer := styles.NewSettingsRenderer(a.Theme)
	fmt.Println(renderer.RenderSettings(settingRows(settings), source))
	return nil
}

func runSettingsSet(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	value, err := parseSwitch(args[1])
	if err != nil {
		return err
	}

	settings, err := a.Settings.Get(ctx, entity.DefaultFocusSettings())
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	key, err := applySetting(&settings, args[0], value)
	if err != nil {
		return err
	}
	if err := a.Settings.Set(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	fmt.Println(styles.NewSettingsRenderer(a.Theme).RenderSaved(key, value))
	return nil
}

func runSettingsReset(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	defaults := entity.DefaultFocusSettings()
	if err := a.Settings.Set(a.Ctx(), defaults); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	renderer := styles.NewSettingsRenderer(a.Theme)
	fmt.Println(renderer.RenderSettings(settingRows(defaults), "defaults restored"))
	return nil
}

func settingRows(s entity.FocusSettings) []styles.SettingRow {
	return []styles.SettingRow{
		{Key: settingAutoActivate, Value: s.AutoActivate},
		{Key: settingBlockScroll, Value: s.BlockScroll},
	}
}

// applySetting sets one field by its CLI key and returns the canonical key.
func applySetting(s *entity.FocusSettings, key string, value bool) (string, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-") {
	case settingAutoActivate, "autoactivate":
		s.AutoActivate = value
		return settingAutoActivate, nil
	case settingBlockScroll, "blockscroll":
		s.BlockScroll = value
		return settingBlockScroll, nil
	default:
		return "", fmt.Errorf("unknown setting %q (use %s or %s)", key, settingAutoActivate, settingBlockScroll)
	}
}

// parseSwitch accepts on/off, yes/no and anything strconv.ParseBool does.
func parseSwitch(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes", "y", "enable", "enabled":
		return true, nil
	case "off", "no", "n", "disable", "disabled":
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid value %q (use on or off)", raw)
	}
	return v, nil
}
