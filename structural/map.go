package structural

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is the structural string-keyed map. Iteration follows insertion order.
type Map = orderedmap.OrderedMap[string, any]

// NewMap returns an empty map with room for capacity entries.
func NewMap(capacity int) *Map {
	return orderedmap.New[string, any](capacity)
}

// MapOf builds a map from alternating keys and values. It panics on a non-string key,
// so it is meant for literals in code and tests.
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("structural.MapOf: odd number of arguments")
	}

	m := NewMap(len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("structural.MapOf: key %v is not a string", kv[i]))
		}
		m.Set(key, kv[i+1])
	}

	return m
}

// Keys returns the map keys in insertion order.
func Keys(m *Map) []string {
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}
