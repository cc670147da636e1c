package options

// CategoryEnum is a set of switches applied while building a mapping plan.
type CategoryEnum int

const (
	CategoryNativeDate    CategoryEnum = 1 << iota // time.Time passes through as a structural value (YAML timestamps)
	CategoryLenientTuple                           // fixed tuples zip to the shorter length instead of rejecting a length mismatch
	CategoryIntegralFloat                          // float kinds accept structural integers on unlower
	CategoryStrictFields                           // records reject map keys that are not declared fields

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

// Has reports whether every switch in c is set.
func (o CategoryEnum) Has(c CategoryEnum) bool {
	return o&c == c
}
