package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one main-loop dispatch.
// The last callback posted before the dispatch runs wins. Hosts use it to
// fold DOM mutation storms into a single structural-change notification.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer wraps a main-loop post function.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		pending: make(map[string]func()),
		post:    post,
	}
}

// Post schedules fn under key unless a dispatch for key is already queued,
// in which case fn replaces the queued callback.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, queued := c.pending[key]
	c.pending[key] = fn
	c.mu.Unlock()

	if queued {
		return
	}
	c.post(func() { c.dispatch(key) })
}

func (c *Coalescer) dispatch(key string) {
	c.mu.Lock()
	fn, ok := c.pending[key]
	delete(c.pending, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if ok && !destroyed {
		fn()
	}
}

// Destroy drops queued work and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = make(map[string]func())
	c.mu.Unlock()
}
