package validation

import "errors"

// Registration errors. Validation outcomes are never reported as errors.
var (
	// ErrEmptyMessage is returned when a rule is registered without a message.
	ErrEmptyMessage = errors.New("validation: rule message is empty")

	// ErrNilPredicate is returned when a rule is registered without a predicate.
	ErrNilPredicate = errors.New("validation: predicate is nil")

	// ErrEmptyField is returned when a rule names an empty field.
	ErrEmptyField = errors.New("validation: field name is empty")

	// ErrNoFields is returned when a combination spans no fields.
	ErrNoFields = errors.New("validation: combination has no fields")

	// ErrNoReader is returned by AddCheck when the context cannot read field values.
	ErrNoReader = errors.New("validation: no field reader configured")

	// ErrNilChild is returned when connecting or appending a nil node.
	ErrNilChild = errors.New("validation: child node is nil")

	// ErrCycle is returned when a connection would make a context its own descendant.
	ErrCycle = errors.New("validation: connection creates a cycle")
)
