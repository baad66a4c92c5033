package broadcast

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Broadcast after the broadcaster was closed.
var ErrClosed = errors.New("broadcast: broadcaster is closed")

// Message wraps data of type T for type-safe broadcasting.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel messages are delivered on.
	// The channel is closed when the subscriber or the broadcaster is closed.
	Receive(ctx context.Context) <-chan Message[T]

	// Close stops delivery and closes the receive channel. It is idempotent.
	Close() error
}

// Broadcaster sends messages to multiple subscribers without blocking the sender.
type Broadcaster[T any] interface {
	// Subscribe creates a subscriber that lives until ctx is done or it is closed.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast delivers msg to every subscriber with free buffer space.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close closes every subscriber. It is idempotent.
	Close() error
}

type subscriber[T any] struct {
	ch     chan Message[T]
	closed bool
	mu     sync.RWMutex
	onDone func()
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch: make(chan Message[T], bufferSize),
	}
}

func (s *subscriber[T]) Receive(context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	close(s.ch)
	s.closed = true
	onDone := s.onDone
	s.mu.Unlock()

	if onDone != nil {
		onDone()
	}
	return nil
}

// send reports false only when the subscriber is closed.
// A full buffer drops msg and still reports true.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
	default:
	}
	return true
}
