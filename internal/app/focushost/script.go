package focushost

import (
	"fmt"

	"github.com/bnema/focusmode/assets"
	"github.com/bnema/focusmode/internal/application/usecase"
	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/infrastructure/config"
)

// HandlerName is the script message handler the page script posts to.
const HandlerName = "focusmode"

// ScriptConfig derives the page script parameters from the focus config.
// Only the toggle chord suppresses the page's default key handling.
func ScriptConfig(cfg config.FocusConfig) (assets.ScriptConfig, error) {
	keys, err := cfg.Keys()
	if err != nil {
		return assets.ScriptConfig{}, err
	}

	return assets.ScriptConfig{
		Handler: HandlerName,
		Classes: map[string]string{
			string(entity.MarkerFocusMode): cfg.FocusClass,
			string(entity.MarkerNoScroll):  cfg.NoScrollClass,
		},
		VideoSelector: cfg.VideoSelector,
		Keys: []assets.ScriptKey{
			scriptKey(keys.Toggle, true),
			scriptKey(keys.Exit, false),
		},
	}, nil
}

// PageAssets returns the page script and stylesheet for cfg.
func PageAssets(cfg config.FocusConfig) (script, stylesheet string, err error) {
	sc, err := ScriptConfig(cfg)
	if err != nil {
		return "", "", err
	}
	script, err = assets.PageScript(sc)
	if err != nil {
		return "", "", fmt.Errorf("build page script: %w", err)
	}
	return script, assets.Stylesheet(cfg.FocusClass, cfg.NoScrollClass), nil
}

// FocusOptions converts the focus config into controller options.
func FocusOptions(cfg config.FocusConfig) (Options, error) {
	keys, err := cfg.Keys()
	if err != nil {
		return Options{}, err
	}
	return Options{
		MatchURL: cfg.MatchURL,
		Focus: usecase.FocusModeOptions{
			ContentParam: cfg.ContentParam,
			ToggleKey:    keys.Toggle,
			ExitKey:      keys.Exit,
		},
	}, nil
}

func scriptKey(chord entity.KeyChord, preventDefault bool) assets.ScriptKey {
	return assets.ScriptKey{
		Code:           chord.Code,
		Alt:            chord.Modifiers&entity.ModAlt != 0,
		Ctrl:           chord.Modifiers&entity.ModCtrl != 0,
		Shift:          chord.Modifiers&entity.ModShift != 0,
		Meta:           chord.Modifiers&entity.ModMeta != 0,
		PreventDefault: preventDefault,
	}
}
