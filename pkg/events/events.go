package events

import (
	"sync"
)

// Handler receives a triggered event.
type Handler[T any] func(event T)

// Manager fans events out to registered handlers.
type Manager[T any] struct {
	lock          sync.Mutex
	subscriptions []*subscription[T]
}

func NewManager[T any]() *Manager[T] {
	return &Manager[T]{}
}

// subscription delivers events to one handler in trigger order.
// At most one delivery goroutine runs per subscription.
type subscription[T any] struct {
	handler Handler[T]
	lock    sync.Mutex
	pending []T
	running bool
}

func (s *subscription[T]) push(event T) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.pending = append(s.pending, event)
	if s.running {
		return
	}
	s.running = true
	go s.deliver()
}

func (s *subscription[T]) deliver() {
	for {
		s.lock.Lock()
		if len(s.pending) == 0 {
			s.running = false
			s.lock.Unlock()
			return
		}
		event := s.pending[0]
		s.pending = s.pending[1:]
		s.lock.Unlock()

		s.handler(event)
	}
}

// RegisterHandler registers a handler for events.
// The handler will be called in a goroutine.
func (em *Manager[T]) RegisterHandler(handler Handler[T]) {
	em.lock.Lock()
	defer em.lock.Unlock()
	em.subscriptions = append(em.subscriptions, &subscription[T]{handler: handler})
}

// Trigger triggers an event.
// Handlers run off the caller's goroutine, so Trigger never waits on a slow
// handler. Each handler sees events in the order they were triggered.
func (em *Manager[T]) Trigger(event T) {
	em.lock.Lock()
	defer em.lock.Unlock()
	for _, s := range em.subscriptions {
		s.push(event)
	}
}
