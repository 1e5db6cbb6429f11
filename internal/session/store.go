// Package session owns the client's authentication state. The [Store] is
// the single source of truth for the current identity: controllers write to
// it through LogIn/LogOut only, and every view derives what it may render
// from a snapshot or from the logged-in stream.
package session

import (
	"sync"

	"github.com/savasana/yoga-client/models"
)

// State is a synchronous snapshot of the store. IsLogged is true exactly
// when Identity is non-nil.
type State struct {
	IsLogged bool
	Identity *models.Identity
}

// Store holds the current [models.Identity] (or none) and broadcasts its
// presence as a live boolean sequence. A Store must be constructed with
// [NewStore] and passed by reference to every consumer; there is no package
// global.
//
// The logged-in stream behaves like a state cell, not an event emitter: a
// new subscriber immediately receives the value current at subscribe time,
// then every subsequent transition. Subscriber channels are buffered and
// coalescing, so a slow consumer observes the latest truth and can never
// block the store.
type Store struct {
	mu       sync.Mutex
	identity *models.Identity
	subs     []*subscriber
}

type subscriber struct {
	ch     chan bool
	closed bool
}

// NewStore returns an empty, logged-out store.
func NewStore() *Store {
	return &Store{}
}

// LogIn installs identity as the current principal and broadcasts true.
// The identity value is copied; callers keep no shared reference into the
// store's state.
func (s *Store) LogIn(identity models.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	own := identity
	s.identity = &own
	s.broadcastLocked(true)
}

// LogOut clears the current identity and broadcasts false.
func (s *Store) LogOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	s.broadcastLocked(false)
}

// Current returns a snapshot of the store. The returned identity is a copy.
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return State{}
	}
	identity := *s.identity
	return State{IsLogged: true, Identity: &identity}
}

// ObserveLoggedIn subscribes to the logged-in stream. The returned channel
// immediately carries the current value; afterwards it carries every
// transition, coalesced to the latest when the consumer lags. The returned
// cancel function unsubscribes and closes the channel; it is safe to call
// more than once and must be called on view teardown so an abandoned
// subscription never receives further state.
func (s *Store) ObserveLoggedIn() (<-chan bool, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &subscriber{ch: make(chan bool, 1)}
	sub.ch <- s.identity != nil
	s.subs = append(s.subs, sub)

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if sub.closed {
			return
		}
		sub.closed = true
		close(sub.ch)

		for i, candidate := range s.subs {
			if candidate == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
	}

	return sub.ch, cancel
}

// broadcastLocked pushes value to every live subscriber in subscription
// order. Caller must hold s.mu. Draining before sending keeps the send
// non-blocking: only lock holders write to subscriber channels.
func (s *Store) broadcastLocked(value bool) {
	for _, sub := range s.subs {
		if sub.closed {
			continue
		}
		select {
		case <-sub.ch:
		default:
		}
		sub.ch <- value
	}
}
