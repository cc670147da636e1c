package structural

import "time"

// Equal reports whether a and b are the same structural value. Map entries must
// appear in the same order; timestamps compare by instant.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
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
	case *Map:
		bv, ok := b.(*Map)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for pa, pb := av.Oldest(), bv.Oldest(); pa != nil; pa, pb = pa.Next(), pb.Next() {
			if pa.Key != pb.Key || !Equal(pa.Value, pb.Value) {
				return false
			}
		}
		return true
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}
