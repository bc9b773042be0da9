package cmd

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/focusmode/internal/app/bridge"
	"github.com/bnema/focusmode/internal/application/usecase"
	"github.com/bnema/focusmode/internal/cli"
	"github.com/bnema/focusmode/internal/cli/model"
)

// surface runs the terminal control surface next to a host.
type surface struct {
	program *tea.Program
	model   model.SurfaceModel
	done    chan struct{}
	err     error
}

// startSurface starts the control surface for the page behind b. sim may be
// nil.
func startSurface(ctx context.Context, a *cli.App, b *bridge.Bridge, sim model.Simulator, title string) *surface {
	uc := usecase.NewFocusSurfaceUseCase(a.Settings, b, a.Config.Focus.MatchURL)
	m := model.NewSurfaceModel(ctx, a.Theme, model.SurfaceModelConfig{
		Surface:   uc,
		Subscribe: b.Subscribe,
		Simulator: sim,
		Title:     title,
	})

	s := &surface{
		program: tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)),
		model:   m,
		done:    make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		_, s.err = s.program.Run()
		s.model.Close()
	}()
	return s
}

// Done is closed once the surface exits.
func (s *surface) Done() <-chan struct{} {
	return s.done
}

// Stop quits the surface and waits for the terminal to be restored.
func (s *surface) Stop() error {
	s.program.Quit()
	<-s.done
	if errors.Is(s.err, tea.ErrProgramKilled) {
		return nil
	}
	return s.err
}

// contextDone returns a child of parent that is also cancelled once done
// closes.
func contextDone(parent context.Context, done <-chan struct{}) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case <-done:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
