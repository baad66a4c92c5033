package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster fans messages out to in-process subscribers.
//
// Delivery never blocks: when a subscriber's buffer is full the message is
// dropped for that subscriber only, and the subscriber stays registered. This
// suits payload-free notifications such as "state changed", where a message
// already waiting in the buffer carries the same information as a new one.
type MemoryBroadcaster[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewMemoryBroadcaster creates an in-memory broadcaster.
// bufferSize is the per-subscriber channel buffer; values below 1 are raised to 1.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

// Subscribe registers a subscriber that is removed when ctx is done or when it
// is closed. A closed broadcaster returns an already closed subscriber.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T](b.bufferSize)
	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}
	sub.onDone = func() { b.remove(sub) }

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			select {
			case <-ctx.Done():
				_ = sub.Close()
			case <-b.closedSignal(sub):
			}
		}()
	}

	return sub
}

// Broadcast delivers msg to every live subscriber.
func (b *MemoryBroadcaster[T]) Broadcast(_ context.Context, msg Message[T]) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrClosed
	}
	subs := make([]*subscriber[T], 0, len(b.subscribers))
	for sub := range b.subscribers {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.send(msg)
	}
	return nil
}

// Subscribers returns the number of registered subscribers.
func (b *MemoryBroadcaster[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close closes every subscriber and waits for context watchers to exit.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	subs := make([]*subscriber[T], 0, len(b.subscribers))
	for sub := range b.subscribers {
		subs = append(subs, sub)
	}
	clear(b.subscribers)
	b.mu.Unlock()

	for _, sub := range subs {
		_ = sub.Close()
	}

	b.cleanupWg.Wait()
	return nil
}

func (b *MemoryBroadcaster[T]) remove(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subscribers, sub)
}

// closedSignal returns a channel closed once sub is closed, so context
// watchers of explicitly closed subscribers do not leak.
func (b *MemoryBroadcaster[T]) closedSignal(sub *subscriber[T]) <-chan struct{} {
	done := make(chan struct{})
	sub.mu.Lock()
	if sub.closed {
		sub.mu.Unlock()
		close(done)
		return done
	}
	prev := sub.onDone
	sub.onDone = func() {
		if prev != nil {
			prev()
		}
		close(done)
	}
	sub.mu.Unlock()
	return done
}
