package focushost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/focusmode/internal/app/focushost"
	"github.com/bnema/focusmode/internal/infrastructure/config"
)

func TestScriptConfig(t *testing.T) {
	cfg := config.DefaultConfig().Focus
	cfg.ToggleKey = "ctrl+shift+f"

	sc, err := focushost.ScriptConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, focushost.HandlerName, sc.Handler)
	assert.Equal(t, cfg.FocusClass, sc.Classes["focus-mode"])
	assert.Equal(t, cfg.NoScrollClass, sc.Classes["no-scroll"])
	require.Len(t, sc.Keys, 2)

	toggle := sc.Keys[0]
	assert.Equal(t, "KeyF", toggle.Code)
	assert.True(t, toggle.Ctrl)
	assert.True(t, toggle.Shift)
	assert.False(t, toggle.Alt)
	assert.True(t, toggle.PreventDefault)

	assert.Equal(t, "Escape", sc.Keys[1].Code)
	assert.False(t, sc.Keys[1].PreventDefault)
}

func TestScriptConfig_InvalidKey(t *testing.T) {
	cfg := config.DefaultConfig().Focus
	cfg.ExitKey = "ctrl+"

	_, err := focushost.ScriptConfig(cfg)
	assert.Error(t, err)
}

func TestPageAssets(t *testing.T) {
	cfg := config.DefaultConfig().Focus
	cfg.FocusClass = "zen"

	script, css, err := focushost.PageAssets(cfg)
	require.NoError(t, err)
	assert.Contains(t, script, "window.__focusmodeConfig = {")
	assert.Contains(t, script, `"zen"`)
	assert.Contains(t, css, "body.zen")
	assert.NotContains(t, css, "uw-focus-mode")
}

func TestFocusOptions(t *testing.T) {
	cfg := config.DefaultConfig().Focus

	opts, err := focushost.FocusOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.MatchURL, opts.MatchURL)
	assert.Equal(t, "v", opts.Focus.ContentParam)
	assert.Equal(t, "KeyF", opts.Focus.ToggleKey.Code)
	assert.Equal(t, "Escape", opts.Focus.ExitKey.Code)
}
