package validator

import (
	"math"
	"strconv"
	"strings"
)

// Digit accepts integers within the 32-bit signed range, given either as an
// integer value of any width or as a decimal string.
var Digit Factory = New(func(value any) bool {
	switch v := value.(type) {
	case int8, int16, int32, uint8, uint16:
		return true
	case int:
		return v >= math.MinInt32 && v <= math.MaxInt32
	case int64:
		return v >= math.MinInt32 && v <= math.MaxInt32
	case uint:
		return v <= math.MaxInt32
	case uint32:
		return v <= math.MaxInt32
	case uint64:
		return v <= math.MaxInt32
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		return err == nil
	}
	return false
})

// Numeric accepts integer and floating point values and strings holding a number.
var Numeric Factory = New(func(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil
	}
	return false
})
