package validator

import "regexp"

// Pattern accepts strings matching expr. The expression is compiled once,
// when the factory is created, and panics if it is invalid.
func Pattern(expr string) Factory {
	re := regexp.MustCompile(expr)
	return PatternRegexp(re)
}

// PatternRegexp is Pattern for an already compiled expression.
func PatternRegexp(re *regexp.Regexp) Factory {
	return New(func(value any) bool {
		s, ok := value.(string)
		return ok && re.MatchString(s)
	})
}

// CompilesAsRegexp accepts strings that are valid regular expressions.
var CompilesAsRegexp Factory = New(func(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, err := regexp.Compile(s)
	return err == nil
})
