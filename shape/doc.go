// Package shape describes the static shape of Go values for mapping plans.
//
// A Type is an explicit, immutable description of one value shape: a primitive kind,
// a literal value set, a record with named fields, a container, a union of tagged
// alternatives, an enumeration, a date/time kind, a callable's parameters, or an
// opaque type that reduces to a single constructor argument.
//
// Descriptors are built once per Go type and handed to mapping.Build. They can be
// written out by hand with the *Of constructors, or derived from Go types by a
// Registry:
//
//	reg := shape.NewRegistry(shape.WithFieldNamer(shape.SnakeCase))
//	reg.Register(shape.EnumOf(Red, Green, Blue))
//	reg.RegisterUnion(reflect.TypeFor[Direction](),
//		reflect.TypeFor[Left](), reflect.TypeFor[Right]())
//	t := shape.For[Order](reg)
//
// Derivation rules:
//
//   - registered descriptors win
//   - types implementing Reducer become Opaque
//   - time.Time is a timestamp, time.Duration a duration
//   - tuple.Pair and tuple.Triple are fixed tuples, tuple.Uniform a uniform tuple
//   - bool, string, integer and float kinds (named or not) are primitives
//   - complex kinds are Complex, []byte is Bytes
//   - *T is an optional T, i.e. a Union of T and None
//   - []T is a List, [N]T a fixed Tuple of N elements, map[~string]V a Map
//   - structs are Records over their exported fields
//
// Record fields honor the `shape` struct tag: `shape:"name"` renames the key,
// `shape:"-"` skips the field, and the options `date` and `clock` pick the
// date-only or time-of-day text for a time.Time field. Anything else derives to
// Unknown, which mapping.Build rejects.
package shape
