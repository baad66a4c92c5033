package validation

import (
	"sync"

	"github.com/dmitrymomot/livecheck/pkg/observable"
)

type listItem struct {
	node   Node
	cancel func()
}

// List is an observable collection of nodes, usually the contexts of the
// elements of a slice field. Appending or removing an element and any
// element's own change notify the list's listeners.
type List struct {
	mu      sync.RWMutex
	items   []listItem
	emitter observable.Emitter
}

var _ Collection = (*List)(nil)

// NewList creates a list holding nodes. Nil nodes are skipped.
func NewList(nodes ...Node) *List {
	l := &List{}
	for _, n := range nodes {
		if n != nil {
			l.items = append(l.items, l.track(n))
		}
	}
	return l
}

// Append adds n at the end of the list.
func (l *List) Append(n Node) error {
	if n == nil {
		return ErrNilChild
	}

	l.mu.Lock()
	l.items = append(l.items, l.track(n))
	l.mu.Unlock()

	l.emitter.NotifyAll()
	return nil
}

// Remove drops the element at index i and reports whether it existed.
func (l *List) Remove(i int) bool {
	l.mu.Lock()
	if i < 0 || i >= len(l.items) {
		l.mu.Unlock()
		return false
	}
	item := l.items[i]
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	l.mu.Unlock()

	item.cancel()
	l.emitter.NotifyAll()
	return true
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// At returns the element at index i, or nil when i is out of range.
func (l *List) At(i int) Node {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i].node
}

// Validate validates every element.
func (l *List) Validate() {
	l.mu.RLock()
	nodes := make([]Node, len(l.items))
	for i, it := range l.items {
		nodes[i] = it.node
	}
	l.mu.RUnlock()

	for _, n := range nodes {
		n.Validate()
	}
}

// OnChange registers fn to run after any structural or element change.
func (l *List) OnChange(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return l.emitter.Subscribe(func(string) { fn() })
}

// Close stops forwarding element changes.
func (l *List) Close() {
	l.mu.Lock()
	items := l.items
	l.items = nil
	l.mu.Unlock()

	for _, it := range items {
		it.cancel()
	}
}

func (l *List) track(n Node) listItem {
	return listItem{
		node:   n,
		cancel: n.OnChange(func() { l.emitter.Notify(observable.AllFields) }),
	}
}
