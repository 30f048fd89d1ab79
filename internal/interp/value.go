package interp

import "strconv"

// Value is a runtime value: the Go types nil, bool, float64, and string
// stand in directly for spec.md's nil/boolean/number/string cases (Go
// already distinguishes them as concrete types, so no wrapper struct adds
// anything); Callable and *Instance cover the remaining two cases.
type Value = any

// IsTruthy implements spec.md §4.4's truthiness rule: nil and boolean false
// are falsy, everything else — including zero and the empty string — is
// truthy.
func IsTruthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements spec.md §4.4's equality rule: nil equals only nil,
// values of different Go (i.e. language) types are never equal, otherwise
// each type's natural equality applies.
func IsEqual(a, b Value) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	af, aIsNum := a.(float64)
	bf, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return af == bf
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return as == bs
	}
	ab, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		return ab == bb
	}
	return a == b
}

// Stringify renders v the way `print` does (spec.md §4.4): numbers drop a
// trailing ".0" when integer-valued, functions/classes/instances print
// their own descriptive form.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case Callable:
		return val.String()
	case *Instance:
		return val.String()
	default:
		return ""
	}
}

// formatNumber implements the round-trip stringification invariant of
// spec.md §8: 'f' formatting at minimal round-tripping precision already
// renders an integer-valued float (e.g. 7) without a decimal point, so no
// separate ".0"-stripping step is needed.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
