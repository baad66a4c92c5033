package validation

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/livecheck/pkg/broadcast"
	"github.com/dmitrymomot/livecheck/pkg/logger"
	"github.com/dmitrymomot/livecheck/pkg/observable"
	"github.com/dmitrymomot/livecheck/pkg/validator"
)

// Node is anything that contributes messages to a parent context.
// *Context[T] implements it for every T.
type Node interface {
	Validate()
	HasError() bool
	Message(path string) (string, bool)
	Messages() map[string]string
	OnChange(fn func()) (cancel func())
}

// Collection is an ordered, changing set of nodes, such as a *List.
type Collection interface {
	Len() int
	At(i int) Node
	OnChange(fn func()) (cancel func())
}

// Event is delivered on the Changes feed when a context's messages change.
type Event struct {
	// Source is the ID of the context that published the event.
	Source string
}

type connection struct {
	node   Node
	list   Collection
	cancel func()
}

// Context validates one entity of type T.
//
// Rules are grouped into per-field chains. A field change re-evaluates only
// the chains it affects, and the resulting message set is published as an
// immutable *Store. Listeners are notified only when the published messages
// actually change.
//
// Registration and validation are not synchronized: mutate the entity and
// call Add*, Connect*, Validate and FieldChanged from one goroutine. Reads
// through Snapshot, Message, Messages and HasError are safe at any time.
type Context[T any] struct {
	id     string
	entity T
	read   func(T, string) (any, bool)
	log    *slog.Logger

	order  []string
	chains map[string]*chain[T]
	combos []*combination[T]
	conns  []connection

	store     atomic.Pointer[Store]
	listeners observable.Emitter
	events    *broadcast.MemoryBroadcaster[Event]

	unsubscribe func()
	closeOnce   sync.Once
}

var _ Node = (*Context[struct{}])(nil)

// New creates a context for entity. When entity implements observable.Notifier
// and auto-validation is enabled, the context follows its field changes until Close.
//
// New panics if a WithReader option was built for a different entity type.
func New[T any](entity T, opts ...Option) *Context[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c := &Context[T]{
		id:     uuid.New().String(),
		entity: entity,
		chains: make(map[string]*chain[T]),
		events: broadcast.NewMemoryBroadcaster[Event](o.eventBuffer),
	}
	c.log = o.logger.With(logger.ContextID(c.id))
	c.store.Store(NewStore())

	switch r := o.reader.(type) {
	case nil:
		if _, ok := any(entity).(observable.Getter); ok {
			c.read = func(e T, field string) (any, bool) {
				return any(e).(observable.Getter).Get(field)
			}
		}
	case func(T, string) (any, bool):
		c.read = r
	default:
		panic(fmt.Errorf("validation: reader %T does not accept entity type %T", o.reader, entity))
	}

	if n, ok := any(entity).(observable.Notifier); ok && o.autoValidate {
		c.unsubscribe = n.Subscribe(c.FieldChanged)
	}

	return c
}

// ID returns the context's unique identifier.
func (c *Context[T]) ID() string { return c.id }

// Entity returns the validated entity.
func (c *Context[T]) Entity() T { return c.entity }

// Value reads field through the configured reader.
func (c *Context[T]) Value(field string) (any, bool) {
	if c.read == nil {
		return nil, false
	}
	return c.read(c.entity, field)
}

// Add appends a rule to field's chain. The predicate may also read related
// fields; those are evaluated first and re-checked whenever they change.
func (c *Context[T]) Add(message, field string, predicate Predicate[T], related ...string) error {
	if message == "" {
		return fmt.Errorf("rule for field %q: %w", field, ErrEmptyMessage)
	}
	if predicate == nil {
		return fmt.Errorf("rule for field %q: %w", field, ErrNilPredicate)
	}
	if field == "" || slices.Contains(related, "") {
		return ErrEmptyField
	}

	fields := dedupe(append([]string{field}, related...))
	c.chainFor(field).add(newRule(message, fields, predicate))
	return nil
}

// AddCheck appends a reusable field check to the check's field chain.
// Values are read with the context's reader.
func (c *Context[T]) AddCheck(message string, check validator.Check) error {
	if check.Test == nil {
		return fmt.Errorf("check for field %q: %w", check.Field, ErrNilPredicate)
	}
	if c.read == nil {
		return fmt.Errorf("check for field %q: %w", check.Field, ErrNoReader)
	}

	read, field, test := c.read, check.Field, check.Test
	return c.Add(message, field, func(e T) bool {
		v, _ := read(e, field)
		return test(v)
	})
}

// AddCombination registers a rule over several fields. Each field's chain
// gets one part; the predicate runs once all parts are reached in a pass.
func (c *Context[T]) AddCombination(message string, predicate Predicate[T], fields ...string) error {
	if message == "" {
		return fmt.Errorf("combination %q: %w", fields, ErrEmptyMessage)
	}
	if predicate == nil {
		return fmt.Errorf("combination %q: %w", fields, ErrNilPredicate)
	}
	if len(fields) == 0 {
		return ErrNoFields
	}
	if slices.Contains(fields, "") {
		return fmt.Errorf("combination %q: %w", fields, ErrEmptyField)
	}

	combo := newCombination(message, dedupe(fields), predicate)
	c.combos = append(c.combos, combo)
	for _, p := range combo.parts {
		c.chainFor(p.field).add(p)
	}
	return nil
}

// ConnectContext nests child. Its messages appear under "@<i>." where i is
// the connection index, and its changes are forwarded to this context's listeners.
// Connecting c to itself or to a context that already contains c fails with ErrCycle.
func (c *Context[T]) ConnectContext(child Node) error {
	if child == nil {
		return ErrNilChild
	}
	if reaches(child, c) {
		return ErrCycle
	}
	cancel := child.OnChange(c.notify)
	c.conns = append(c.conns, connection{node: child, cancel: cancel})
	return nil
}

// ConnectList nests a collection. Element j of connection i appears under "#<i>[<j>].".
// Elements appended to the list later are not checked for cycles.
func (c *Context[T]) ConnectList(list Collection) error {
	if list == nil {
		return ErrNilChild
	}
	for j := range list.Len() {
		if n := list.At(j); n != nil && reaches(n, c) {
			return ErrCycle
		}
	}
	cancel := list.OnChange(c.notify)
	c.conns = append(c.conns, connection{list: list, cancel: cancel})
	return nil
}

// Validate re-evaluates every chain and every connected node.
func (c *Context[T]) Validate() {
	for _, ch := range c.chains {
		ch.clear()
	}

	p := c.newPass(NewStore())
	for _, field := range c.order {
		p.run(field, false)
	}

	for _, conn := range c.conns {
		if conn.node != nil {
			conn.node.Validate()
			continue
		}
		for j := range conn.list.Len() {
			if n := conn.list.At(j); n != nil {
				n.Validate()
			}
		}
	}

	c.publish(p.store)
}

// FieldChanged re-evaluates what depends on field. observable.AllFields
// triggers Validate. Fields no rule reads are ignored.
func (c *Context[T]) FieldChanged(field string) {
	if field == observable.AllFields {
		c.Validate()
		return
	}

	ch, owned := c.chains[field]
	dependents := c.dependents(field)
	if !owned && len(dependents) == 0 {
		c.log.Debug("field change ignored", logger.Field(field))
		return
	}

	p := c.newPass(c.Snapshot().Fork())

	if owned {
		ch.clear()
		p.store.Remove(field)
		p.run(field, false)
	}

	// Fields sharing a rule with field may hold results mirrored or
	// invalidated during the cascade; bring their entries up to date.
	worklist := dependents
	if owned {
		worklist = dedupe(append(ch.related(), dependents...))
	}
	for _, f := range worklist {
		p.run(f, false)
	}

	c.publish(p.store)
}

// dependents clears entries of other chains that read field and returns
// the fields owning them.
func (c *Context[T]) dependents(field string) []string {
	var out []string
	for _, f := range c.order {
		if f == field {
			continue
		}
		if c.chains[f].clearReferencing(field) {
			out = append(out, f)
		}
	}
	return out
}

// Snapshot returns the current local messages.
func (c *Context[T]) Snapshot() *Store {
	return c.store.Load()
}

// Message resolves a path to a message. See Messages for the path format.
func (c *Context[T]) Message(path string) (string, bool) {
	mp := parsePath(path)

	switch mp.kind {
	case pathChild:
		if mp.conn >= len(c.conns) || c.conns[mp.conn].node == nil {
			return "", false
		}
		return c.conns[mp.conn].node.Message(mp.field)

	case pathElement:
		if mp.conn >= len(c.conns) || c.conns[mp.conn].list == nil {
			return "", false
		}
		list := c.conns[mp.conn].list
		if mp.elem >= list.Len() {
			return "", false
		}
		n := list.At(mp.elem)
		if n == nil {
			return "", false
		}
		return n.Message(mp.field)
	}

	return c.Snapshot().Message(path)
}

// Messages returns every message of this context and its connections.
// Keys of a single child connection i are prefixed with "@i.", keys of
// element j of collection connection i with "#i[j].".
func (c *Context[T]) Messages() map[string]string {
	out := c.Snapshot().Messages()

	for i, conn := range c.conns {
		if conn.node != nil {
			prefix := childPrefix(i)
			for k, v := range conn.node.Messages() {
				out[prefix+k] = v
			}
			continue
		}
		for j := range conn.list.Len() {
			n := conn.list.At(j)
			if n == nil {
				continue
			}
			prefix := elementPrefix(i, j)
			for k, v := range n.Messages() {
				out[prefix+k] = v
			}
		}
	}

	return out
}

// HasError reports whether this context or any connected node has a message.
func (c *Context[T]) HasError() bool {
	if c.Snapshot().HasError() {
		return true
	}
	for _, conn := range c.conns {
		if conn.node != nil {
			if conn.node.HasError() {
				return true
			}
			continue
		}
		for j := range conn.list.Len() {
			if n := conn.list.At(j); n != nil && n.HasError() {
				return true
			}
		}
	}
	return false
}

// OnChange registers fn to run after the messages of this context or a
// connected node change.
func (c *Context[T]) OnChange(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return c.listeners.Subscribe(func(string) { fn() })
}

// Changes returns an asynchronous feed of change events. Events are dropped
// for subscribers whose buffer is full. The feed ends when ctx is done or
// the context is closed.
func (c *Context[T]) Changes(ctx context.Context) broadcast.Subscriber[Event] {
	return c.events.Subscribe(ctx)
}

// Close detaches the context from its entity and connections and ends every
// Changes feed. It is safe to call more than once.
func (c *Context[T]) Close() error {
	var err error
	c.closeOnce.Do(func() {
		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		for _, conn := range c.conns {
			if conn.cancel != nil {
				conn.cancel()
			}
		}
		err = c.events.Close()
		c.log.Info("validation context closed")
	})
	return err
}

func (c *Context[T]) publish(next *Store) {
	if c.Snapshot().Equal(next) {
		return
	}
	c.store.Store(next)
	c.log.Debug("snapshot published", logger.Count(next.Len()))
	c.notify()
}

func (c *Context[T]) notify() {
	c.listeners.Notify(c.id)
	// Only fails after Close, when nobody is subscribed.
	_ = c.events.Broadcast(context.Background(), broadcast.Message[Event]{Data: Event{Source: c.id}})
}

// contains reports whether target is c or is connected below it.
func (c *Context[T]) contains(target Node) bool {
	if sameNode(c, target) {
		return true
	}
	for _, conn := range c.conns {
		if conn.node != nil {
			if reaches(conn.node, target) {
				return true
			}
			continue
		}
		for j := range conn.list.Len() {
			if n := conn.list.At(j); n != nil && reaches(n, target) {
				return true
			}
		}
	}
	return false
}

// reaches reports whether target is n or a descendant of n. Nodes other than
// contexts are opaque and only compared by identity.
func reaches(n, target Node) bool {
	if r, ok := n.(interface{ contains(Node) bool }); ok {
		return r.contains(target)
	}
	return sameNode(n, target)
}

func sameNode(a, b Node) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		return false
	}
	return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}

func (c *Context[T]) chainFor(field string) *chain[T] {
	ch, ok := c.chains[field]
	if !ok {
		ch = newChain[T](field)
		c.chains[field] = ch
		c.order = append(c.order, field)
	}
	return ch
}

func dedupe(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
