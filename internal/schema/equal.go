package schema

import (
	"encoding/json"
	"reflect"
)

// Equal reports whether two decoded schema values are structurally equal.
// It is independent of the validation engine and tolerant of the numeric
// representations produced by the different decode paths (yaml ints,
// encoding/json float64s, json.Number from the schema package's own reader).
func Equal(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bval, ok := bv[k]
			if !ok || !Equal(v, bval) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		an, aok := asFloat(a)
		bn, bok := asFloat(b)
		if aok && bok {
			return an == bn
		}
		if b == nil {
			return false
		}
		// Values outside the decoded-JSON domain (e.g. []byte) are never
		// equal; comparing them directly would panic on uncomparable types.
		if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
			return false
		}
		return a == b
	}
}

// asFloat normalizes the numeric types seen in decoded JSON/YAML values.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
