package mapping

import (
	"errors"
	"reflect"

	"ags/options"
	"ags/primitive"
	"ags/shape"
	"ags/structural"
)

type primitiveMapping struct {
	t    *shape.Primitive
	opts options.CategoryEnum
}

func (b *builder) primitive(t *shape.Primitive, path Path) (Mapping, error) {
	if t.Kind == 0 || t.Go == nil {
		return nil, unsupported(path, t)
	}

	return &primitiveMapping{t: t, opts: b.opts}, nil
}

func (m *primitiveMapping) Type() shape.Type { return m.t }

func (m *primitiveMapping) Lower(rv reflect.Value, path Path) (any, error) {
	if m.t.Kind == primitive.KindNone {
		if rv = concrete(rv); rv.IsValid() {
			return nil, mismatch(path, "None", typeName(rv.Type()))
		}
		return nil, nil
	}

	rv, err := checkType(rv, m.t.Go, path)
	if err != nil {
		return nil, err
	}

	s, err := primitive.ToStructural(m.t.Kind, rv)
	if errors.Is(err, primitive.ErrOutOfRange) {
		return nil, mismatch(path, "an integer within int64", shape.Repr(rv.Interface()))
	}

	return s, err
}

func (m *primitiveMapping) Unlower(s any, path Path) (reflect.Value, error) {
	kind := m.t.Kind

	switch {
	case kind == primitive.KindNone:
		if s != nil {
			return reflect.Value{}, mismatch(path, "None", structural.Describe(s))
		}
		return reflect.Zero(m.t.Go), nil

	case kind.IsInteger():
		i, ok := s.(int64)
		if !ok {
			return reflect.Value{}, mismatch(path, "int", structural.Describe(s))
		}

		rv, err := primitive.FromInt(kind, i, m.t.Go)
		if err != nil {
			lo, hi := kind.Bounds()
			return reflect.Value{}, Errorf(CodeTypeMismatch, path,
				"expects an integer between %d and %d, got %d", lo, hi, i)
		}
		return rv, nil

	case kind.IsFloat():
		switch f := s.(type) {
		case float64:
			return m.float(f, path)
		case int64:
			if m.opts.Has(options.CategoryIntegralFloat) {
				return m.float(float64(f), path)
			}
		}
		return reflect.Value{}, mismatch(path, "float", structural.Describe(s))

	case kind == primitive.KindBool:
		b, ok := s.(bool)
		if !ok {
			return reflect.Value{}, mismatch(path, "bool", structural.Describe(s))
		}
		return reflect.ValueOf(b).Convert(m.t.Go), nil

	default:
		str, ok := s.(string)
		if !ok {
			return reflect.Value{}, mismatch(path, "str", structural.Describe(s))
		}
		return reflect.ValueOf(str).Convert(m.t.Go), nil
	}
}

func (m *primitiveMapping) float(f float64, path Path) (reflect.Value, error) {
	rv, err := primitive.FromFloat(m.t.Kind, f, m.t.Go)
	if err != nil {
		return reflect.Value{}, mismatch(path, "a float within float32", shape.Repr(f))
	}

	return rv, nil
}

// lowerPrimitive is the structural form of a literal or enum value.
func lowerPrimitive(v any) (any, bool) {
	if v == nil {
		return nil, true
	}

	kind := primitive.FromReflectType(reflect.TypeOf(v))
	if kind == 0 {
		return nil, false
	}

	s, err := primitive.ToStructural(kind, reflect.ValueOf(v))
	return s, err == nil
}

type literalMapping struct {
	t       *shape.Literal
	lowered []any
	names   []string
}

func (b *builder) literal(t *shape.Literal, path Path) (Mapping, error) {
	if t.Go == nil || len(t.Values) == 0 {
		return nil, unsupported(path, t)
	}

	m := &literalMapping{t: t, lowered: make([]any, len(t.Values)), names: make([]string, len(t.Values))}
	for i, v := range t.Values {
		s, ok := lowerPrimitive(v)
		if !ok {
			return nil, Errorf(CodeUnsupportedType, path, "literal value %s is not a primitive", shape.Repr(v))
		}
		if v == nil && !canBeNil(t.Go) || v != nil && !reflect.TypeOf(v).AssignableTo(t.Go) {
			return nil, Errorf(CodeUnsupportedType, path, "literal value %s is not a %s", shape.Repr(v), t.Go)
		}

		m.lowered[i] = s
		m.names[i] = shape.Repr(v)
	}

	return m, nil
}

func (m *literalMapping) Type() shape.Type { return m.t }

func (m *literalMapping) Lower(rv reflect.Value, path Path) (any, error) {
	var v any
	if rv = concrete(rv); rv.IsValid() {
		v = rv.Interface()
	}

	for i, opt := range m.t.Values {
		if opt == v {
			return m.lowered[i], nil
		}
	}

	return nil, m.notIn(path, v)
}

func (m *literalMapping) Unlower(s any, path Path) (reflect.Value, error) {
	for i, lowered := range m.lowered {
		if structural.Equal(lowered, s) {
			if m.t.Values[i] == nil {
				return reflect.Zero(m.t.Go), nil
			}
			return store(reflect.ValueOf(m.t.Values[i]), m.t.Go), nil
		}
	}

	return reflect.Value{}, m.notIn(path, s)
}

func (m *literalMapping) notIn(path Path, got any) *Error {
	err := mismatch(path, "one of "+joinNames(m.names), shape.Repr(got))
	return withHint(err, got, stringValues(m.t.Values))
}

type enumMapping struct {
	t      *shape.Enum
	names  []string
	byName map[string]any
	byVal  map[any]string
}

func (b *builder) enum(t *shape.Enum, path Path) (Mapping, error) {
	if t.Go == nil || len(t.Members) == 0 {
		return nil, unsupported(path, t)
	}

	m := &enumMapping{
		t:      t,
		names:  make([]string, len(t.Members)),
		byName: make(map[string]any, len(t.Members)),
		byVal:  make(map[any]string, len(t.Members)),
	}
	for i, member := range t.Members {
		if reflect.TypeOf(member.Value) != t.Go || !t.Go.Comparable() {
			return nil, Errorf(CodeUnsupportedType, path, "enum member %s is not a comparable %s", member.Name, t.Go)
		}
		if _, dup := m.byName[member.Name]; dup {
			return nil, Errorf(CodeUnsupportedType, path, "enum member name %s is declared twice", shape.Repr(member.Name))
		}
		if _, dup := m.byVal[member.Value]; dup {
			return nil, Errorf(CodeUnsupportedType, path, "enum members %s and %s share a value",
				shape.Repr(m.byVal[member.Value]), shape.Repr(member.Name))
		}

		m.names[i] = member.Name
		m.byName[member.Name] = member.Value
		m.byVal[member.Value] = member.Name
	}

	return m, nil
}

func (m *enumMapping) Type() shape.Type { return m.t }

func (m *enumMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv, err := checkType(rv, m.t.Go, path)
	if err != nil {
		return nil, err
	}

	name, ok := m.byVal[rv.Interface()]
	if !ok {
		return nil, mismatch(path, "a member of "+m.t.String(), shape.Repr(rv.Interface()))
	}

	return name, nil
}

func (m *enumMapping) Unlower(s any, path Path) (reflect.Value, error) {
	name, ok := s.(string)
	if !ok {
		return reflect.Value{}, mismatch(path, "str", structural.Describe(s))
	}

	v, ok := m.byName[name]
	if !ok {
		return reflect.Value{}, notIn(path, m.names, name)
	}

	return reflect.ValueOf(v), nil
}

type complexMapping struct {
	t *shape.Complex
}

func (b *builder) complex(t *shape.Complex, path Path) (Mapping, error) {
	if t.Go == nil || (t.Go.Kind() != reflect.Complex64 && t.Go.Kind() != reflect.Complex128) {
		return nil, unsupported(path, t)
	}

	return &complexMapping{t: t}, nil
}

func (m *complexMapping) Type() shape.Type { return m.t }

func (m *complexMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv, err := checkType(rv, m.t.Go, path)
	if err != nil {
		return nil, err
	}

	c := rv.Complex()
	if imag(c) == 0 {
		return real(c), nil
	}

	return structural.MapOf("real", real(c), "imag", imag(c)), nil
}

func (m *complexMapping) Unlower(s any, path Path) (reflect.Value, error) {
	out := reflect.New(m.t.Go).Elem()

	switch s := s.(type) {
	case float64:
		out.SetComplex(complex(s, 0))
		return out, nil

	case *structural.Map:
		re, okRe := number(s, "real")
		im, okIm := number(s, "imag")
		if s.Len() != 2 || !okRe || !okIm {
			return reflect.Value{}, mismatch(path, "numerical map values 'real' and 'imag'",
				"map with keys "+joinNames(quoteAll(structural.Keys(s))))
		}
		out.SetComplex(complex(re, im))
		return out, nil

	default:
		return reflect.Value{}, mismatch(path, "float or map", structural.Describe(s))
	}
}

func number(m *structural.Map, key string) (float64, bool) {
	v, _ := m.Get(key)
	switch v := v.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}
