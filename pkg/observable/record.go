package observable

import (
	"maps"
	"reflect"
	"slices"
	"sync"
)

// Record is a map-backed entity that notifies listeners when a field value changes.
// All methods are safe for concurrent use; listeners run outside the lock.
type Record struct {
	Emitter

	mu     sync.RWMutex
	values map[string]any
}

// NewRecord creates a record seeded with a copy of values.
func NewRecord(values map[string]any) *Record {
	r := &Record{values: make(map[string]any, len(values))}
	maps.Copy(r.values, values)
	return r
}

// Get returns the current value of field.
func (r *Record) Get(field string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[field]
	return v, ok
}

// Set stores value and notifies listeners when it differs from the previous one.
func (r *Record) Set(field string, value any) {
	r.mu.Lock()
	prev, existed := r.values[field]
	if existed && reflect.DeepEqual(prev, value) {
		r.mu.Unlock()
		return
	}
	if r.values == nil {
		r.values = make(map[string]any)
	}
	r.values[field] = value
	r.mu.Unlock()

	r.Notify(field)
}

// Replace swaps every value at once and raises a single all-fields change.
func (r *Record) Replace(values map[string]any) {
	r.mu.Lock()
	r.values = make(map[string]any, len(values))
	maps.Copy(r.values, values)
	r.mu.Unlock()

	r.NotifyAll()
}

// Fields returns the sorted field names currently present.
func (r *Record) Fields() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.values))
}
