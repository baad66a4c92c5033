package observable

import (
	"sync"

	"github.com/google/uuid"
)

// AllFields is the field name carried by a change that affects every field.
const AllFields = ""

// Listener receives the name of a changed field.
type Listener func(field string)

// Notifier is implemented by entities that publish field changes.
type Notifier interface {
	// Subscribe registers fn and returns a function that removes it.
	Subscribe(fn Listener) (unsubscribe func())
}

// Getter is implemented by entities that expose field values by name.
type Getter interface {
	Get(field string) (any, bool)
}

type listenerEntry struct {
	id string
	fn Listener
}

// Emitter is an embeddable Notifier. The zero value is ready to use.
type Emitter struct {
	mu        sync.Mutex
	listeners []listenerEntry
}

// Subscribe registers fn. Nil listeners are ignored and yield a no-op unsubscribe.
func (e *Emitter) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}

	id := uuid.New().String()

	e.mu.Lock()
	e.listeners = append(e.listeners, listenerEntry{id: id, fn: fn})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { e.unsubscribe(id) })
	}
}

// Notify reports a change of a single field.
func (e *Emitter) Notify(field string) {
	// Snapshot under lock so listeners may subscribe or unsubscribe while being called.
	e.mu.Lock()
	listeners := make([]listenerEntry, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()

	for _, l := range listeners {
		l.fn(field)
	}
}

// NotifyAll reports that every field may have changed.
func (e *Emitter) NotifyAll() {
	e.Notify(AllFields)
}

// Listeners returns the number of registered listeners.
func (e *Emitter) Listeners() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}

func (e *Emitter) unsubscribe(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}
