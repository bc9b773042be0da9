package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/focusmode/internal/app/bridge"
	"github.com/bnema/focusmode/internal/app/focushost"
	"github.com/bnema/focusmode/internal/app/messaging"
	"github.com/bnema/focusmode/internal/application/usecase"
	"github.com/bnema/focusmode/internal/domain/entity"
	"github.com/bnema/focusmode/internal/domain/repository"
	"github.com/bnema/focusmode/internal/infrastructure/simpage"
	"github.com/bnema/focusmode/internal/logging"
	"github.com/bnema/focusmode/internal/ui/mainloop"
)

// Simulator runs a focus controller against an in-memory video page on a
// private main loop. Every page event goes through the loop, the way a real
// host would deliver it.
type Simulator struct {
	ctx    context.Context
	cancel context.CancelFunc
	loop   *mainloop.Loop
	page   *simpage.Page
	focus  *usecase.FocusModeUseCase
	bridge *bridge.Bridge

	matchURL     string
	contentParam string
	video        int // loop-owned
}

// NewSimulator starts the loop and attaches a controller to a video page
// without a player.
func NewSimulator(ctx context.Context, opts focushost.Options, settings repository.FocusSettingsRepository) (*Simulator, error) {
	ctx, cancel := context.WithCancel(logging.WithComponent(ctx, "simulator"))

	s := &Simulator{
		ctx:          ctx,
		cancel:       cancel,
		loop:         mainloop.NewLoop(),
		matchURL:     opts.MatchURL,
		contentParam: opts.Focus.ContentParam,
	}
	go s.loop.Run(ctx)

	s.bridge = bridge.New(s.loop.Post)
	s.page = simpage.New(s.videoURL(1))
	s.video = 1
	s.focus = usecase.NewFocusModeUseCase(s.page, s.bridge, settings, opts.Focus)

	err := s.loop.Do(ctx, func() {
		s.focus.Start(logging.WithPage(ctx, "simulator", s.page.URL()))
		s.bridge.Attach(messaging.NewFocusRouter(s.focus), s.page.URL)
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("start simulator: %w", err)
	}
	return s, nil
}

// Bridge returns the bridge control surfaces talk through.
func (s *Simulator) Bridge() *bridge.Bridge {
	return s.bridge
}

// Do runs fn on the simulator's loop and waits for it.
func (s *Simulator) Do(fn func()) error {
	return s.loop.Do(s.ctx, fn)
}

// Controller returns the focus controller. Only touch it inside Do.
func (s *Simulator) Controller() *usecase.FocusModeUseCase {
	return s.focus
}

// Page returns the simulated page.
func (s *Simulator) Page() *simpage.Page {
	return s.page
}

func (s *Simulator) videoURL(n int) string {
	host := s.matchURL
	if host == "" {
		host = "youtube.com/watch"
	}
	param := s.contentParam
	if param == "" {
		param = "v"
	}
	return fmt.Sprintf("https://www.%s?%s=sim%03d", host, param, n)
}

func (s *Simulator) run(action string, fn func()) {
	if err := s.loop.Do(s.ctx, fn); err != nil {
		logging.FromContext(s.ctx).Debug().Err(err).Str("action", action).Msg("simulator action dropped")
	}
}

// NextVideo navigates in place to the next video, swapping the player.
func (s *Simulator) NextVideo() {
	s.run("next_video", func() {
		s.video++
		s.page.Navigate(s.videoURL(s.video))
	})
}

// TogglePlay plays or pauses the current player. Starting playback is
// reported to the controller like a page "play" event.
func (s *Simulator) TogglePlay() {
	s.run("toggle_play", func() {
		playing := s.page.Playback().Playing
		if s.page.SetPlaying(!playing) {
			s.focus.OnPlaybackStarted(s.ctx)
		}
	})
}

// InsertPlayer adds a paused player.
func (s *Simulator) InsertPlayer() {
	s.run("insert_player", func() {
		s.page.InsertPlayer(false)
	})
}

// RemovePlayer removes the player.
func (s *Simulator) RemovePlayer() {
	s.run("remove_player", s.page.RemovePlayer)
}

// Mutate fires an unrelated structural change.
func (s *Simulator) Mutate() {
	s.run("mutate", s.page.Mutate)
}

// Status describes the page and controller in one line.
func (s *Simulator) Status() string {
	var (
		url      string
		playback entity.PlaybackState
		state    entity.FocusState
		watcher  entity.WatcherState
	)
	err := s.loop.Do(s.ctx, func() {
		url = s.page.URL()
		playback = s.page.Playback()
		state = s.focus.State()
		watcher = s.focus.WatcherState()
	})
	if err != nil {
		return "simulator stopped"
	}

	player := "none"
	switch {
	case playback.Playing:
		player = "playing"
	case playback.Present:
		player = "paused"
	}

	var markers []string
	for _, m := range []entity.Marker{entity.MarkerFocusMode, entity.MarkerNoScroll} {
		if s.page.HasMarker(m) {
			markers = append(markers, string(m))
		}
	}
	if len(markers) == 0 {
		markers = append(markers, "none")
	}

	return fmt.Sprintf("%s\nplayer: %s  override: %t  watcher: %s  markers: %s",
		url, player, state.ManualOverride, watcher, strings.Join(markers, ","))
}

// Close unloads the page and stops the loop.
func (s *Simulator) Close() {
	_ = s.loop.Do(s.ctx, func() {
		s.bridge.Detach()
		s.focus.Close(s.ctx)
		s.page.Close()
	})
	s.loop.Close()
	s.cancel()
}
