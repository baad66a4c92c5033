package validator

// Test reports whether a field value is acceptable.
type Test func(value any) bool

// Check is a predicate bound to a single field.
type Check struct {
	Field string
	Test  Test
}

// Factory binds a reusable test to a field.
type Factory func(field string) Check

// Valid reports whether c has a field and a test.
func (c Check) Valid() bool {
	return c.Field != "" && c.Test != nil
}

// New wraps a plain test into a Factory.
func New(test Test) Factory {
	return func(field string) Check {
		return Check{Field: field, Test: test}
	}
}

// Not negates a factory.
func Not(f Factory) Factory {
	return func(field string) Check {
		inner := f(field)
		return Check{
			Field: field,
			Test: func(value any) bool {
				return !inner.Test(value)
			},
		}
	}
}

// IgnoreEmpty makes a factory accept nil and empty strings.
func IgnoreEmpty(f Factory) Factory {
	return func(field string) Check {
		inner := f(field)
		return Check{
			Field: field,
			Test: func(value any) bool {
				if isEmpty(value) {
					return true
				}
				return inner.Test(value)
			},
		}
	}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}
