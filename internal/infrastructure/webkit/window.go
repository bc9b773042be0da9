package webkit

import (
	"context"
	"os"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/focusmode/internal/logging"
)

// ApplicationID is the GTK application identifier.
const ApplicationID = "dev.bnema.focusmode"

// WindowOptions configures the browse window.
type WindowOptions struct {
	Title  string
	Width  int
	Height int
	URL    string
}

// RunWindow opens a window with one focus-enabled web view and blocks in the
// GTK main loop until the window closes. onReady runs on the main thread once
// the host exists. Cancelling ctx quits the application. Returns the exit
// status.
func RunWindow(ctx context.Context, win WindowOptions, opts Options, onReady func(*Host)) int {
	log := logging.FromContext(ctx)

	app := gtk.NewApplication(ApplicationID, gio.ApplicationNonUnique)
	var host *Host

	app.ConnectActivate(func() {
		var err error
		host, err = NewHost(ctx, opts)
		if err != nil {
			log.Error().Err(err).Msg("failed to create web view")
			app.Quit()
			return
		}

		window := gtk.NewApplicationWindow(app)
		window.SetTitle(win.Title)
		window.SetDefaultSize(win.Width, win.Height)
		window.SetChild(host.View())
		window.ConnectCloseRequest(func() bool {
			host.Close()
			return false
		})
		window.Present()

		if onReady != nil {
			onReady(host)
		}
		if win.URL != "" {
			host.Load(win.URL)
		}
		log.Info().Str("url", win.URL).Msg("browse window opened")
	})

	stop := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			glib.IdleAdd(func() bool {
				app.Quit()
				return false
			})
		case <-stop:
		}
	}()

	// GTK must not see the CLI's own arguments.
	status := app.Run(os.Args[:1])
	close(stop)
	if host != nil {
		host.Close()
	}
	return status
}
