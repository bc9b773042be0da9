// Package simpage provides an in-memory video page implementing port.FocusPage.
// It backs the simulator command and the controller tests.
package simpage

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/domain/entity"
)

// Page is a simulated single-page-application video page.
type Page struct {
	mu        sync.Mutex
	url       string
	playback  entity.PlaybackState
	markers   map[entity.Marker]bool
	relayouts int
	observers map[int]func()
	nextID    int
	closed    bool
}

var _ port.FocusPage = (*Page)(nil)

// New creates a page showing url with no playable element.
func New(url string) *Page {
	return &Page{
		url:       url,
		markers:   make(map[entity.Marker]bool),
		observers: make(map[int]func()),
	}
}

// URL implements port.FocusPage.
func (p *Page) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

// Playback implements port.FocusPage.
func (p *Page) Playback() entity.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playback
}

// SetMarker implements port.FocusPage.
func (p *Page) SetMarker(_ context.Context, marker entity.Marker, present bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return port.ErrPageClosed
	}
	if present {
		p.markers[marker] = true
	} else {
		delete(p.markers, marker)
	}
	return nil
}

// Relayout implements port.FocusPage.
func (p *Page) Relayout(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return port.ErrPageClosed
	}
	p.relayouts++
	return nil
}

// ObserveStructure implements port.FocusPage.
func (p *Page) ObserveStructure(_ context.Context, onChange func()) (port.StructureSubscription, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, port.ErrPageClosed
	}
	id := p.nextID
	p.nextID++
	p.observers[id] = onChange
	return &subscription{page: p, id: id}, nil
}

// Navigate changes the location without reloading and swaps the player,
// which the page reports as a structural change.
func (p *Page) Navigate(url string) {
	p.mu.Lock()
	p.url = url
	p.playback = entity.PlaybackState{Present: true}
	p.mu.Unlock()
	p.Mutate()
}

// InsertPlayer adds a playable element, optionally already playing.
func (p *Page) InsertPlayer(playing bool) {
	p.mu.Lock()
	p.playback = entity.PlaybackState{Present: true, Playing: playing}
	p.mu.Unlock()
	p.Mutate()
}

// RemovePlayer removes the playable element.
func (p *Page) RemovePlayer() {
	p.mu.Lock()
	p.playback = entity.PlaybackState{}
	p.mu.Unlock()
	p.Mutate()
}

// SetPlaying changes the playing flag of the current element without a
// structural change. It returns true when playback started, which hosts
// report as a "playback started" event.
func (p *Page) SetPlaying(playing bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playback.Present {
		return false
	}
	started := playing && !p.playback.Playing
	p.playback.Playing = playing
	return started
}

// Mutate notifies every structure observer, in subscription order.
func (p *Page) Mutate() {
	p.mu.Lock()
	ids := make([]int, 0, len(p.observers))
	for id := range p.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	callbacks := make([]func(), 0, len(ids))
	for _, id := range ids {
		callbacks = append(callbacks, p.observers[id])
	}
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// HasMarker reports whether the marker is applied.
func (p *Page) HasMarker(marker entity.Marker) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.markers[marker]
}

// Relayouts returns how many forced layouts were requested.
func (p *Page) Relayouts() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.relayouts
}

// Observers returns the number of live structure observers.
func (p *Page) Observers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.observers)
}

// Close unloads the page. Later calls fail with port.ErrPageClosed.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.observers = make(map[int]func())
}

type subscription struct {
	page *Page
	id   int
	once sync.Once
}

func (s *subscription) Stop() {
	s.once.Do(func() {
		s.page.mu.Lock()
		delete(s.page.observers, s.id)
		s.page.mu.Unlock()
	})
}
