// Package mapping builds plans that convert typed Go values to structural values
// and back.
//
// A plan is built once from a shape.Type with Build and then used any number of
// times, from any number of goroutines:
//
//	m, err := mapping.Build(shape.Of[Order](), options.CategoryNone)
//	s, err := mapping.Lower(m, order)          // Order -> structural
//	v, err := mapping.Unlower(m, s)            // structural -> Order
//
// Lowering rejects values that do not match the declared shape exactly, and
// unlowering rejects structural values that lowering would never produce. Every
// rejection is an *Error carrying a Code and the Path of the offending value,
// such as ".b[0].x" or ".direction(Right).when".
//
// Plan[T] wraps a plan with the static type T.
package mapping
