package store

import "sync"

// Store is an observable value container. Subscribers are invoked with a
// snapshot of the value after every mutation, and once immediately upon
// subscribing.
type Store[T any] struct {
	mu     sync.Mutex
	value  T
	subs   map[int]func(T)
	nextID int
}

// New creates a store holding initial.
func New[T any](initial T) *Store[T] {
	return &Store[T]{
		value: initial,
		subs:  make(map[int]func(T)),
	}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value and notifies all subscribers.
func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Update applies fn to the current value, stores the result, and notifies
// all subscribers.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	v := s.value
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, sub := range subs {
		sub(v)
	}
}

// Subscribe registers fn and immediately invokes it with the current value.
// The initial call happens under the store's lock, so a value from a
// concurrent Set is never delivered ahead of it; fn must not call back into
// the store during that initial invocation. The returned function removes
// the subscription.
func (s *Store[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	fn(s.value)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs copies the subscriber list. Callers invoke subscribers
// outside the lock so a subscriber may subscribe or unsubscribe without
// deadlocking.
func (s *Store[T]) snapshotSubs() []func(T) {
	out := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
