package session

import (
	"sync"
	"time"
)

// DefaultStormWindow is how long a fired notifier stays quiet.
const DefaultStormWindow = 1500 * time.Millisecond

type listener struct {
	id uint64
	fn func()
}

// UnauthorizedNotifier fans a "session is no longer valid" signal out to its
// subscribers. Bursts of 401s collapse into a single notification per window.
type UnauthorizedNotifier struct {
	mu          sync.Mutex
	window      time.Duration
	now         func() time.Time
	lockedUntil time.Time
	nextId      uint64
	listeners   []listener
}

type Option func(*UnauthorizedNotifier)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(n *UnauthorizedNotifier) {
		n.now = now
	}
}

// NewUnauthorizedNotifier builds a notifier. A window <= 0 falls back to
// DefaultStormWindow.
func NewUnauthorizedNotifier(window time.Duration, opts ...Option) *UnauthorizedNotifier {
	if window <= 0 {
		window = DefaultStormWindow
	}
	n := &UnauthorizedNotifier{window: window, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Subscribe registers fn and returns a func that removes it again. Calling the
// returned func more than once is a no-op.
func (n *UnauthorizedNotifier) Subscribe(fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextId++
	id := n.nextId
	n.listeners = append(n.listeners, listener{id: id, fn: fn})

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit notifies every subscriber unless a previous Emit fired within the
// window. It reports whether listeners were called. Listeners run on the
// caller's goroutine, outside the notifier's lock.
func (n *UnauthorizedNotifier) Emit() bool {
	n.mu.Lock()
	now := n.now()
	if now.Before(n.lockedUntil) {
		n.mu.Unlock()
		return false
	}
	n.lockedUntil = now.Add(n.window)
	fns := make([]func(), len(n.listeners))
	for i, l := range n.listeners {
		fns[i] = l.fn
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return true
}

// Reset reopens the notifier immediately, e.g. after a successful login.
func (n *UnauthorizedNotifier) Reset() {
	n.mu.Lock()
	n.lockedUntil = time.Time{}
	n.mu.Unlock()
}

// Locked reports whether an Emit right now would be suppressed.
func (n *UnauthorizedNotifier) Locked() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.now().Before(n.lockedUntil)
}
