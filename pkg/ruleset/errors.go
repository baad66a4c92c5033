package ruleset

import "errors"

var (
	// ErrInvalidDocument is returned when a rule file is not valid YAML.
	ErrInvalidDocument = errors.New("ruleset: invalid document")

	// ErrInvalidRule is returned for rules missing a field, fields or message.
	ErrInvalidRule = errors.New("ruleset: invalid rule")

	// ErrUnknownCheck is returned for check names with no registered validator.
	ErrUnknownCheck = errors.New("ruleset: unknown check")

	// ErrInvalidArg is returned when a check argument has the wrong type.
	ErrInvalidArg = errors.New("ruleset: invalid check argument")
)
