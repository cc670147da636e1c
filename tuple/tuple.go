// Package tuple provides the Go value types that descriptor derivation treats as tuples.
//
// Pair and Triple lower to fixed-length sequences whose elements have their own types;
// Uniform lowers to a sequence of any length with a single element type.
package tuple

// Pair is a fixed tuple of two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a fixed tuple of three values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Uniform is a variable-length tuple whose elements share one type.
type Uniform[T any] []T

// Of2 builds a Pair.
func Of2[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} }

// Of3 builds a Triple.
func Of3[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Of builds a Uniform tuple.
func Of[T any](items ...T) Uniform[T] { return Uniform[T](items) }

// Unpack returns both elements.
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

// Unpack returns all three elements.
func (t Triple[A, B, C]) Unpack() (A, B, C) { return t.First, t.Second, t.Third }

func (Pair[A, B]) fixedTuple()      {}
func (Triple[A, B, C]) fixedTuple() {}
func (Uniform[T]) uniformTuple()    {}

// Fixed is implemented by the fixed tuple types of this package.
type Fixed interface{ fixedTuple() }

// Variadic is implemented by Uniform.
type Variadic interface{ uniformTuple() }
