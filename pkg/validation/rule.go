package validation

// Predicate reports whether entity satisfies a rule.
type Predicate[T any] func(entity T) bool

// entry is one link of a rule chain: a plain rule or a combination part.
type entry[T any] interface {
	// fields returns every field the entry reads, its own chain field included.
	fields() []string
	check(entity T) Result
	last() Result
	clear()
}

// rule is a predicate bound to a single chain.
type rule[T any] struct {
	related   []string
	predicate Predicate[T]
	message   string
	result    Result
}

func newRule[T any](message string, fields []string, predicate Predicate[T]) *rule[T] {
	return &rule[T]{
		related:   fields,
		predicate: predicate,
		message:   message,
		result:    InsufficientResult(fields),
	}
}

func (r *rule[T]) fields() []string { return r.related }

func (r *rule[T]) check(entity T) Result {
	if r.predicate(entity) {
		r.result = ValidResult(r.related)
	} else {
		r.result = InvalidResult(r.related, r.message)
	}
	return r.result
}

func (r *rule[T]) last() Result { return r.result }

func (r *rule[T]) clear() {
	r.result = InsufficientResult(r.related)
}
