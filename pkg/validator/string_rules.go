package validator

import (
	"reflect"
	"unicode/utf8"
)

// Required accepts non-empty strings and any other non-nil value.
// Typed nil pointers, maps, slices and interfaces are rejected too.
var Required Factory = New(func(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return s != ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return !rv.IsNil()
	}
	return true
})

// MinLen accepts strings with at least min characters.
func MinLen(min int) Factory {
	return New(func(value any) bool {
		s, ok := value.(string)
		return ok && utf8.RuneCountInString(s) >= min
	})
}

// MaxLen accepts strings with at most max characters.
func MaxLen(max int) Factory {
	return New(func(value any) bool {
		s, ok := value.(string)
		return ok && utf8.RuneCountInString(s) <= max
	})
}
