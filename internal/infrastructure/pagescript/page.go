// Package pagescript adapts a real browser page running the embedded page
// script to port.FocusPage. Hosts supply an Evaluator and feed the script's
// signals back through Observe.
package pagescript

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/domain/entity"
)

// Evaluator runs a script in the page's main world. Hosts may evaluate
// asynchronously; the returned error only reports failures known up front.
type Evaluator interface {
	Eval(ctx context.Context, script string) error
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(ctx context.Context, script string) error

// Eval calls f(ctx, script).
func (f EvaluatorFunc) Eval(ctx context.Context, script string) error {
	return f(ctx, script)
}

// Page is the host-side view of a scripted page. It caches the location and
// playback snapshot from the latest signal.
type Page struct {
	eval Evaluator

	mu        sync.Mutex
	url       string
	playback  entity.PlaybackState
	observers map[int]func()
	nextID    int
	closed    bool
}

var _ port.FocusPage = (*Page)(nil)

// NewPage creates a page at url driven through eval.
func NewPage(eval Evaluator, url string) *Page {
	return &Page{
		eval:      eval,
		url:       url,
		observers: make(map[int]func()),
	}
}

func (p *Page) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

func (p *Page) Playback() entity.PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playback
}

// Update records the location and playback snapshot of a signal.
func (p *Page) Update(sig Signal) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if sig.URL != "" {
		p.url = sig.URL
	}
	p.playback = sig.Playback()
}

// SetURL records a location reported by the host itself.
func (p *Page) SetURL(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.url = url
}

// SetMarker implements port.FocusPage.
func (p *Page) SetMarker(ctx context.Context, marker entity.Marker, present bool) error {
	name, err := json.Marshal(string(marker))
	if err != nil {
		return err
	}
	return p.call(ctx, fmt.Sprintf("setMarker(%s, %t)", name, present))
}

// Relayout implements port.FocusPage.
func (p *Page) Relayout(ctx context.Context) error {
	return p.call(ctx, "relayout()")
}

// ObserveStructure implements port.FocusPage. The page script's observer
// runs while at least one subscription is live.
func (p *Page) ObserveStructure(ctx context.Context, onChange func()) (port.StructureSubscription, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, port.ErrPageClosed
	}
	id := p.nextID
	p.nextID++
	p.observers[id] = onChange
	first := len(p.observers) == 1
	p.mu.Unlock()

	if first {
		if err := p.call(ctx, "observe(true)"); err != nil {
			p.remove(id)
			return nil, err
		}
	}
	return &subscription{page: p, id: id, ctx: context.WithoutCancel(ctx)}, nil
}

// NotifyStructure runs the structure observers in subscription order.
// Must be called on the host's main loop.
func (p *Page) NotifyStructure() {
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

// Observers returns the number of live structure subscriptions.
func (p *Page) Observers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.observers)
}

// Close detaches the page. Later calls fail with port.ErrPageClosed.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.observers = make(map[int]func())
}

// remove drops an observer and reports whether none are left.
func (p *Page) remove(id int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.observers[id]; !ok {
		return false
	}
	delete(p.observers, id)
	return len(p.observers) == 0 && !p.closed
}

func (p *Page) call(ctx context.Context, method string) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return port.ErrPageClosed
	}
	return p.eval.Eval(ctx, "window.__focusmode && window.__focusmode."+method+";")
}

type subscription struct {
	page *Page
	id   int
	ctx  context.Context
	once sync.Once
}

func (s *subscription) Stop() {
	s.once.Do(func() {
		if s.page.remove(s.id) {
			_ = s.page.call(s.ctx, "observe(false)")
		}
	})
}
