package validation

// combination is a predicate over several fields. It owns one part per field;
// each part sits in that field's chain. The predicate runs once per pass, when
// the last outstanding part is checked, and the outcome is cached until clear.
type combination[T any] struct {
	related   []string
	predicate Predicate[T]
	message   string
	parts     []*part[T]
	result    Result
}

func newCombination[T any](message string, fields []string, predicate Predicate[T]) *combination[T] {
	c := &combination[T]{
		related:   fields,
		predicate: predicate,
		message:   message,
		result:    InsufficientResult(fields),
	}
	for _, f := range fields {
		c.parts = append(c.parts, &part[T]{field: f, parent: c, result: c.result})
	}
	return c
}

func (c *combination[T]) check(entity T) Result {
	if c.result.State != Insufficient {
		return c.result
	}

	for _, p := range c.parts {
		if !p.executed {
			return InsufficientResult(c.related)
		}
	}

	if c.predicate(entity) {
		c.result = ValidResult(c.related)
	} else {
		c.result = InvalidResult(c.related, c.message)
	}

	for _, p := range c.parts {
		p.result = c.result
	}
	return c.result
}

// clear starts a new pass: no part executed, nothing resolved.
func (c *combination[T]) clear() {
	c.result = InsufficientResult(c.related)
	for _, p := range c.parts {
		p.executed = false
		p.result = c.result
	}
}

// part is the slice of a combination living in one field's chain.
type part[T any] struct {
	field    string
	parent   *combination[T]
	executed bool
	result   Result
}

func (p *part[T]) fields() []string { return p.parent.related }

func (p *part[T]) check(entity T) Result {
	p.executed = true
	p.result = p.parent.check(entity)
	return p.result
}

func (p *part[T]) last() Result { return p.result }

func (p *part[T]) clear() { p.parent.clear() }
