package interpreter

import (
	"math"
	"strconv"
	"strings"
)

// Values are represented directly as Go's any, tagged by dynamic type:
// nil, bool, float64, string, or one of Function/Class/*Instance/
// HostCallable below. This departs from the teacher's boxed LoxNil/LoxBool/
// LoxNumber/LoxString wrapper types (object.go) in favor of Go's native
// interface dispatch, the way the rest of the corpus represents dynamically
// typed values.

// IsTruthy implements spec §4.4: nil and false are falsy, everything else
// (including 0 and "") is truthy.
func IsTruthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements spec §4.4's structural equality on primitives with the
// same runtime type, identity equality for callables/classes/instances
// (satisfied here by Go's own == on pointers and interface values), and
// "always unequal" across differing types.
func IsEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// Stringify renders a value for `print` and string conversion per spec §4.4.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		switch {
		case math.IsNaN(val):
			return "nan"
		case math.IsInf(val, 1):
			return "inf"
		case math.IsInf(val, -1):
			return "-inf"
		}
		text := strconv.FormatFloat(val, 'f', -1, 64)
		return strings.TrimSuffix(text, ".0")
	case string:
		return val
	case *Class:
		return val.Name
	case *Instance:
		return val.Class.Name + " instance"
	case interface{ String() string }:
		return val.String()
	default:
		return "nil"
	}
}
