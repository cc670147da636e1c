package mapping

import (
	"reflect"
	"strings"

	"ags/shape"
)

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = shape.Repr(name)
	}

	return out
}

// stringValues returns the members of values that have a string kind.
func stringValues(values []any) []string {
	var out []string
	for _, v := range values {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			out = append(out, rv.String())
		}
	}

	return out
}
