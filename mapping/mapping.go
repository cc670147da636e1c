package mapping

import (
	"reflect"

	"ags/options"
	"ags/shape"
)

// Mapping converts between typed values of one shape and structural values.
//
// Lower accepts a value of exactly Type().GoType(), possibly behind interfaces,
// and Unlower returns a value of exactly that type. Both report failures as *Error
// at path.
type Mapping interface {
	Type() shape.Type
	Lower(v reflect.Value, path Path) (any, error)
	Unlower(s any, path Path) (reflect.Value, error)
}

// Build returns the plan for t.
func Build(t shape.Type, opts options.CategoryEnum) (Mapping, error) {
	return BuildAt(t, "", opts)
}

// BuildAt returns the plan for t, reporting build failures at path.
func BuildAt(t shape.Type, path Path, opts options.CategoryEnum) (Mapping, error) {
	b := builder{opts: opts}
	return b.build(t, path)
}

// Lower converts v with m.
func Lower(m Mapping, v any) (any, error) {
	return m.Lower(reflect.ValueOf(v), "")
}

// Unlower converts s with m.
func Unlower(m Mapping, s any) (any, error) {
	rv, err := m.Unlower(s, "")
	if err != nil {
		return nil, err
	}

	if !rv.IsValid() {
		return nil, nil
	}
	return rv.Interface(), nil
}

type builder struct {
	opts options.CategoryEnum
}

func (b *builder) build(t shape.Type, path Path) (Mapping, error) {
	switch d := t.(type) {
	case *shape.Primitive:
		return b.primitive(d, path)
	case *shape.Literal:
		return b.literal(d, path)
	case *shape.Complex:
		return b.complex(d, path)
	case *shape.Bytes:
		return b.bytes(d, path)
	case *shape.Union:
		return b.union(d, path)
	case *shape.List:
		return b.sequence(d, d.Elem, path)
	case *shape.UniformTuple:
		return b.sequence(d, d.Elem, path)
	case *shape.Tuple:
		return b.tuple(d, path)
	case *shape.Map:
		return b.dict(d, path)
	case *shape.Record:
		return b.record(d, path)
	case *shape.DateTime:
		return b.dateTime(d, path)
	case *shape.Enum:
		return b.enum(d, path)
	case *shape.Signature:
		return b.signature(d, path)
	case *shape.Opaque:
		return b.opaque(d, path)
	default:
		return nil, unsupported(path, t)
	}
}

// buildAll builds the child plans and checks that each one produces want(i).
func (b *builder) buildAll(types []shape.Type, path func(int) Path, want func(int) reflect.Type) ([]Mapping, error) {
	out := make([]Mapping, len(types))
	for i, t := range types {
		m, err := b.build(t, path(i))
		if err != nil {
			return nil, err
		}
		if err := expectGoType(m, want(i), path(i)); err != nil {
			return nil, err
		}
		out[i] = m
	}

	return out, nil
}

// expectGoType checks that m's values can be stored where want is declared.
func expectGoType(m Mapping, want reflect.Type, path Path) error {
	got := m.Type().GoType()
	if got == want || (got != nil && want != nil && want.Kind() == reflect.Interface && got.AssignableTo(want)) {
		return nil
	}

	return Errorf(CodeUnsupportedType, path, "descriptor %s produces %s, not %s", m.Type(), typeName(got), typeName(want))
}

// concrete strips interfaces; a nil interface yields the invalid Value.
func concrete(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}

	return rv
}

// checkType strips interfaces from rv and checks its type is want.
func checkType(rv reflect.Value, want reflect.Type, path Path) (reflect.Value, error) {
	rv = concrete(rv)
	if !rv.IsValid() {
		return rv, mismatch(path, typeName(want), "None")
	}
	if rv.Type() != want {
		return rv, mismatch(path, typeName(want), typeName(rv.Type()))
	}

	return rv, nil
}

// store converts rv to a Value of type t, boxing it when t is an interface.
func store(rv reflect.Value, t reflect.Type) reflect.Value {
	if rv.IsValid() && rv.Type() == t {
		return rv
	}

	out := reflect.New(t).Elem()
	if rv.IsValid() {
		out.Set(rv)
	}

	return out
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "None"
	}

	return t.String()
}
