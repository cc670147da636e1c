package mapping

import (
	"fmt"
	"reflect"

	"ags/shape"
)

var reducerType = reflect.TypeFor[shape.Reducer]()

type opaqueMapping struct {
	t   *shape.Opaque
	arg Mapping
}

func (b *builder) opaque(t *shape.Opaque, path Path) (Mapping, error) {
	if t.Go == nil || t.Arg == nil || !t.Go.Implements(reducerType) {
		return nil, unsupported(path, t)
	}
	if t.Construct.Result != t.Go {
		return nil, Errorf(CodeUnsupportedType, path, "constructor %s returns %s, not %s",
			t.Construct, typeName(t.Construct.Result), t.Go)
	}

	arg, err := b.build(t.Arg, path)
	if err != nil {
		return nil, err
	}
	if err := expectGoType(arg, t.Construct.Arg, path); err != nil {
		return nil, err
	}

	return &opaqueMapping{t: t, arg: arg}, nil
}

func (m *opaqueMapping) Type() shape.Type { return m.t }

// Lower reduces the value to its single constructor argument and lowers that.
func (m *opaqueMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv, err := checkType(rv, m.t.Go, path)
	if err != nil {
		return nil, err
	}

	reduced, args, _ := m.t.Reduce(rv.Interface())
	if reduced != m.t.Go {
		return nil, Errorf(CodeReduceMismatch, path, "reduction returned type %s, expected %s", typeName(reduced), m.t.Go)
	}
	if len(args) != 1 {
		return nil, Errorf(CodeReduceArity, path, "reduction returned %s arguments, expected 1", count(len(args)))
	}

	return m.arg.Lower(reflect.ValueOf(args[0]), path)
}

// Unlower rebuilds the value by calling the constructor on the unlowered argument.
func (m *opaqueMapping) Unlower(s any, path Path) (reflect.Value, error) {
	arg, err := m.arg.Unlower(s, path)
	if err != nil {
		return reflect.Value{}, err
	}

	out, err := m.t.Construct.Call(arg.Interface())
	if err != nil {
		return reflect.Value{}, construct(path, fmt.Errorf("%s: %w", m.t.Construct, err))
	}

	return reflect.ValueOf(out), nil
}
