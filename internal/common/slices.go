package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Duplicate returns the first key produced twice by key, in slice order.
func Duplicate[S ~[]E, E any, K comparable](s S, key func(E) K) (K, bool) {
	seen := make(map[K]struct{}, len(s))
	for _, e := range s {
		k := key(e)
		if _, ok := seen[k]; ok {
			return k, true
		}
		seen[k] = struct{}{}
	}

	var zero K
	return zero, false
}
