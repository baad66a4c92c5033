package validation

// State is the outcome of evaluating a rule.
type State uint8

const (
	// Insufficient means the rule could not be judged yet. It is the initial
	// state and the state of a combination still waiting for some of its fields.
	Insufficient State = iota
	// Valid means the predicate held.
	Valid
	// Invalid means the predicate failed.
	Invalid
)

func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "insufficient"
	}
}

// Result is a tri-state outcome together with the fields it concerns.
// Message is set only for Invalid results.
type Result struct {
	State   State
	Fields  []string
	Message string
}

// ValidResult reports a passing rule over fields.
func ValidResult(fields []string) Result {
	return Result{State: Valid, Fields: fields}
}

// InvalidResult reports a failing rule over fields.
func InvalidResult(fields []string, message string) Result {
	return Result{State: Invalid, Fields: fields, Message: message}
}

// InsufficientResult reports a rule that cannot be judged yet.
func InsufficientResult(fields []string) Result {
	return Result{State: Insufficient, Fields: fields}
}
