package validation

import "slices"

// requestFunc asks the cascade to (re)evaluate another field's chain.
// With insufficientOnly set, only a chain that is still unresolved is evaluated.
type requestFunc func(field string, insufficientOnly bool)

// chain is the ordered, short-circuiting list of entries for one field.
type chain[T any] struct {
	field   string
	entries []entry[T]
}

func newChain[T any](field string) *chain[T] {
	return &chain[T]{field: field}
}

func (c *chain[T]) add(e entry[T]) {
	c.entries = append(c.entries, e)
}

// state is the chain's last known outcome: the state of the first entry that
// is not Valid, or Valid when every entry passed.
func (c *chain[T]) state() State {
	for _, e := range c.entries {
		if s := e.last().State; s != Valid {
			return s
		}
	}
	return Valid
}

// continueCheck resumes at the first entry that is not Valid. Entries before
// it are trusted until clear is called.
func (c *chain[T]) continueCheck(entity T, request requestFunc) Result {
	start := len(c.entries)
	for i, e := range c.entries {
		if e.last().State != Valid {
			start = i
			break
		}
	}

	for _, e := range c.entries[start:] {
		others := c.others(e)

		for _, f := range others {
			request(f, false)
		}

		res := e.check(entity)
		if res.State != Valid {
			return res
		}

		for _, f := range others {
			request(f, true)
		}
	}

	return ValidResult([]string{c.field})
}

func (c *chain[T]) clear() {
	for _, e := range c.entries {
		e.clear()
	}
}

// related returns the other fields referenced by any entry, in chain order.
func (c *chain[T]) related() []string {
	var out []string
	for _, e := range c.entries {
		for _, f := range c.others(e) {
			if !slices.Contains(out, f) {
				out = append(out, f)
			}
		}
	}
	return out
}

func (c *chain[T]) others(e entry[T]) []string {
	fields := e.fields()
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != c.field {
			out = append(out, f)
		}
	}
	return out
}

// clearReferencing resets every entry that reads field.
func (c *chain[T]) clearReferencing(field string) bool {
	cleared := false
	for _, e := range c.entries {
		if slices.Contains(e.fields(), field) {
			e.clear()
			cleared = true
		}
	}
	return cleared
}
