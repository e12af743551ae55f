package search

import (
	"math"

	"github.com/tidwall/gjson"
)

// scalarString returns the value as a string when it is a usable scalar:
// a non-empty string, a non-zero finite number, or true. Null, false, zero,
// empty strings, objects and arrays are not usable.
func scalarString(r gjson.Result) (string, bool) {
	switch r.Type {
	case gjson.String:
		return r.Str, r.Str != ""
	case gjson.Number:
		if r.Num == 0 || math.IsNaN(r.Num) {
			return "", false
		}
		return r.Raw, true
	case gjson.True:
		return "true", true
	default:
		return "", false
	}
}

// firstOf walks an ordered fallback chain and returns the first usable value.
func firstOf(candidates ...gjson.Result) *string {
	for _, c := range candidates {
		if s, ok := scalarString(c); ok {
			return strPtr(s)
		}
	}
	return nil
}
