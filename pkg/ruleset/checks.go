package ruleset

import (
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"slices"

	"github.com/dmitrymomot/livecheck/pkg/validator"
)

type checkBuilder func(arg any) (validator.Factory, error)

var checks = map[string]checkBuilder{
	"required":     plain(validator.Required),
	"digit":        plain(validator.Digit),
	"numeric":      plain(validator.Numeric),
	"file_exists":  plain(validator.FileExists),
	"dir_exists":   plain(validator.DirExists),
	"entry_exists": plain(validator.EntryExists),
	"regexp":       plain(validator.CompilesAsRegexp),
	"min_len":      withInt(validator.MinLen),
	"max_len":      withInt(validator.MaxLen),
	"pattern": func(arg any) (validator.Factory, error) {
		expr, ok := arg.(string)
		if !ok {
			return nil, fmt.Errorf("%w: pattern needs a string, got %T", ErrInvalidArg, arg)
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArg, err)
		}
		return validator.PatternRegexp(re), nil
	},
}

// Checks returns the sorted names usable in the check key of a rule.
func Checks() []string {
	return slices.Sorted(maps.Keys(checks))
}

func plain(f validator.Factory) checkBuilder {
	return func(any) (validator.Factory, error) { return f, nil }
}

func withInt(build func(int) validator.Factory) checkBuilder {
	return func(arg any) (validator.Factory, error) {
		n, ok := arg.(int)
		if !ok || n < 0 {
			return nil, fmt.Errorf("%w: expected a non-negative integer, got %v", ErrInvalidArg, arg)
		}
		return build(n), nil
	}
}

// combinationTest reports whether the values of a combination's fields are acceptable.
type combinationTest func(values []any) bool

var combinations = map[string]combinationTest{
	"equal": func(values []any) bool {
		for _, v := range values[1:] {
			if !reflect.DeepEqual(values[0], v) {
				return false
			}
		}
		return true
	},
	"any_required": func(values []any) bool {
		required := validator.Required("").Test
		for _, v := range values {
			if required(v) {
				return true
			}
		}
		return false
	},
}
