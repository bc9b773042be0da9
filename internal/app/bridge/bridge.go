// Package bridge is the in-process message channel between a page's focus
// controller and its control surfaces.
//
// Requests from a surface are dispatched on the page's main loop and the reply
// path stays open until the router answers. Notifications from the page are
// delivered at most once, asynchronously, and are never retried.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/focusmode/internal/app/messaging"
	"github.com/bnema/focusmode/internal/application/port"
	"github.com/bnema/focusmode/internal/domain/entity"
)

// ErrNoReply means the page received the message but produced no response.
var ErrNoReply = errors.New("page sent no reply")

// Bridge connects one page instance with any number of control surfaces.
type Bridge struct {
	mu        sync.Mutex
	post      func(func()) bool
	router    *messaging.Router
	pageURL   func() string
	listeners map[int]func(messaging.FocusStateNotification)
	nextID    int
}

var (
	_ port.FocusNotifier  = (*Bridge)(nil)
	_ port.FocusCommander = (*Bridge)(nil)
)

// New creates a bridge whose page side runs tasks through post.
func New(post func(func()) bool) *Bridge {
	return &Bridge{
		post:      post,
		listeners: make(map[int]func(messaging.FocusStateNotification)),
	}
}

// Attach connects the page side. pageURL reports the page location and must
// be safe to call from any goroutine.
func (b *Bridge) Attach(router *messaging.Router, pageURL func() string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.router = router
	b.pageURL = pageURL
}

// Detach disconnects the page side. Later requests fail with port.ErrNoListener.
func (b *Bridge) Detach() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.router = nil
	b.pageURL = nil
}

// PageURL implements port.FocusCommander.
func (b *Bridge) PageURL() string {
	b.mu.Lock()
	pageURL := b.pageURL
	b.mu.Unlock()
	if pageURL == nil {
		return ""
	}
	return pageURL()
}

// Request sends msg to the page and waits for its reply.
func (b *Bridge) Request(ctx context.Context, msg messaging.Message) (any, error) {
	b.mu.Lock()
	router := b.router
	b.mu.Unlock()
	if router == nil {
		return nil, port.ErrNoListener
	}

	type result struct {
		reply any
		ok    bool
	}
	replies := make(chan result, 1)

	if !b.post(func() {
		reply, ok := router.Dispatch(ctx, msg)
		replies <- result{reply: reply, ok: ok}
	}) {
		return nil, port.ErrHostInvalidated
	}

	select {
	case r := <-replies:
		if !r.ok {
			return nil, ErrNoReply
		}
		return r.reply, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ToggleFocusMode implements port.FocusCommander.
func (b *Bridge) ToggleFocusMode(ctx context.Context) error {
	reply, err := b.Request(ctx, messaging.Message{Type: messaging.TypeToggleFocusMode})
	if err != nil {
		return err
	}
	return expectAck(reply)
}

// FocusState implements port.FocusCommander.
func (b *Bridge) FocusState(ctx context.Context) (bool, error) {
	reply, err := b.Request(ctx, messaging.Message{Type: messaging.TypeGetFocusState})
	if err != nil {
		return false, err
	}
	state, ok := reply.(messaging.FocusStateReply)
	if !ok {
		return false, fmt.Errorf("unexpected getFocusState reply %T", reply)
	}
	return state.IsActive, nil
}

// PushSettings implements port.FocusCommander.
func (b *Bridge) PushSettings(ctx context.Context, settings entity.FocusSettings) error {
	reply, err := b.Request(ctx, messaging.Message{Type: messaging.TypeUpdateSettings, Settings: &settings})
	if err != nil {
		return err
	}
	return expectAck(reply)
}

func expectAck(reply any) error {
	ack, ok := reply.(messaging.Ack)
	if !ok {
		return fmt.Errorf("unexpected reply %T", reply)
	}
	if !ack.Success {
		return errors.New("page rejected command")
	}
	return nil
}

// Subscribe registers a surface listener for mode-changed notifications.
// Listeners run on their own goroutine and may call back into the bridge.
func (b *Bridge) Subscribe(fn func(messaging.FocusStateNotification)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// NotifyFocusState implements port.FocusNotifier. It returns
// port.ErrNoListener when no surface is subscribed.
func (b *Bridge) NotifyFocusState(_ context.Context, active bool) error {
	b.mu.Lock()
	listeners := make([]func(messaging.FocusStateNotification), 0, len(b.listeners))
	for _, fn := range b.listeners {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	if len(listeners) == 0 {
		return port.ErrNoListener
	}

	n := messaging.NewFocusStateNotification(active)
	for _, fn := range listeners {
		go fn(n)
	}
	return nil
}
