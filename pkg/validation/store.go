package validation

import (
	"maps"
	"slices"
	"strings"
)

// Entry is one invalid result as recorded in a Store.
type Entry struct {
	// Field is the chain the result was published under.
	Field   string
	Message string
	// Fields lists every field the failed rule touches, Field included.
	Fields []string
}

func (e Entry) equal(o Entry) bool {
	return e.Field == o.Field && e.Message == o.Message && slices.Equal(e.Fields, o.Fields)
}

// Store is a snapshot of the current invalid results of one entity.
//
// direct holds the result each field's own chain produced. indirect holds
// results published under another field whose rule also touches the key
// field, so a combination failure is visible on every field it spans.
//
// A published Store is never mutated; changes are applied to a Fork.
type Store struct {
	direct   map[string]Entry
	indirect map[string][]Entry
}

// NewStore returns an empty snapshot.
func NewStore() *Store {
	return &Store{
		direct:   make(map[string]Entry),
		indirect: make(map[string][]Entry),
	}
}

// Fork returns a copy that can be modified without affecting s.
// Entry slices are shared and copied on write.
func (s *Store) Fork() *Store {
	return &Store{
		direct:   maps.Clone(s.direct),
		indirect: maps.Clone(s.indirect),
	}
}

// Put replaces everything field's chain previously contributed with res.
// Only Invalid results are recorded.
func (s *Store) Put(field string, res Result) {
	e := Entry{Field: field, Message: res.Message, Fields: res.Fields}
	if old, ok := s.direct[field]; ok && res.State == Invalid && old.equal(e) {
		return
	}

	s.Remove(field)

	if res.State != Invalid {
		return
	}

	s.direct[field] = e

	for _, g := range res.Fields {
		if g == field || slices.ContainsFunc(s.indirect[g], e.equal) {
			continue
		}
		// Sorted by producing field so the shown message does not depend on
		// the order results were written in.
		list := slices.Clone(s.indirect[g])
		i, _ := slices.BinarySearchFunc(list, e.Field, func(x Entry, f string) int {
			return strings.Compare(x.Field, f)
		})
		s.indirect[g] = slices.Insert(list, i, e)
	}
}

// Remove drops the direct entry of field and every indirect entry it produced.
func (s *Store) Remove(field string) {
	old, ok := s.direct[field]
	if !ok {
		return
	}
	delete(s.direct, field)

	for _, g := range old.Fields {
		if g == field {
			continue
		}
		kept := slices.DeleteFunc(slices.Clone(s.indirect[g]), func(e Entry) bool {
			return e.Field == field
		})
		if len(kept) == 0 {
			delete(s.indirect, g)
		} else {
			s.indirect[g] = kept
		}
	}
}

// Message returns the message shown for field: its own chain's failure first,
// otherwise the failure of another field's rule that touches it, taking the
// producing field that sorts first.
func (s *Store) Message(field string) (string, bool) {
	if e, ok := s.direct[field]; ok {
		return e.Message, true
	}
	if es := s.indirect[field]; len(es) > 0 {
		return es[0].Message, true
	}
	return "", false
}

// Direct returns the entry field's own chain produced.
func (s *Store) Direct(field string) (Entry, bool) {
	e, ok := s.direct[field]
	return e, ok
}

// Indirect returns the entries other fields' rules attributed to field.
func (s *Store) Indirect(field string) []Entry {
	return slices.Clone(s.indirect[field])
}

// HasError reports whether any field has a message.
func (s *Store) HasError() bool {
	return len(s.direct) > 0 || len(s.indirect) > 0
}

// Fields returns the sorted fields that currently have a message.
func (s *Store) Fields() []string {
	set := make(map[string]struct{}, len(s.direct)+len(s.indirect))
	for f := range s.direct {
		set[f] = struct{}{}
	}
	for f := range s.indirect {
		set[f] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Len returns the number of fields that currently have a message.
func (s *Store) Len() int {
	return len(s.Fields())
}

// Messages returns the message of every field that has one.
func (s *Store) Messages() map[string]string {
	out := make(map[string]string, len(s.direct)+len(s.indirect))
	for _, f := range s.Fields() {
		out[f], _ = s.Message(f)
	}
	return out
}

// Equal reports structural equality of two snapshots.
func (s *Store) Equal(o *Store) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if !maps.EqualFunc(s.direct, o.direct, Entry.equal) {
		return false
	}
	return maps.EqualFunc(s.indirect, o.indirect, func(a, b []Entry) bool {
		return slices.EqualFunc(a, b, Entry.equal)
	})
}
