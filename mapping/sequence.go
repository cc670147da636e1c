package mapping

import (
	"reflect"

	"ags/options"
	"ags/shape"
	"ags/structural"
)

// sequenceMapping is a list or a uniform tuple: a slice of any length.
type sequenceMapping struct {
	t    shape.Type
	elem Mapping
}

func (b *builder) sequence(t shape.Type, elem shape.Type, path Path) (Mapping, error) {
	goType := t.GoType()
	if goType == nil || goType.Kind() != reflect.Slice || elem == nil {
		return nil, unsupported(path, t)
	}

	elems, err := b.buildAll([]shape.Type{elem},
		func(int) Path { return path.Each() },
		func(int) reflect.Type { return goType.Elem() })
	if err != nil {
		return nil, err
	}

	return &sequenceMapping{t: t, elem: elems[0]}, nil
}

func (m *sequenceMapping) Type() shape.Type { return m.t }

func (m *sequenceMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv, err := checkType(rv, m.t.GoType(), path)
	if err != nil {
		return nil, err
	}

	out := make([]any, rv.Len())
	for i := range out {
		if out[i], err = m.elem.Lower(rv.Index(i), path.Index(i)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (m *sequenceMapping) Unlower(s any, path Path) (reflect.Value, error) {
	items, ok := s.([]any)
	if !ok {
		return reflect.Value{}, mismatch(path, "list", structural.Describe(s))
	}

	out := reflect.MakeSlice(m.t.GoType(), len(items), len(items))
	for i, item := range items {
		v, err := m.elem.Unlower(item, path.Index(i))
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(v)
	}

	return out, nil
}

// tupleMapping is a fixed-length tuple held by an array or by a struct whose
// fields are the elements.
type tupleMapping struct {
	t       *shape.Tuple
	elems   []Mapping
	lenient bool
}

func (b *builder) tuple(t *shape.Tuple, path Path) (Mapping, error) {
	if t.Go == nil {
		return nil, unsupported(path, t)
	}

	var elemType func(int) reflect.Type
	switch t.Go.Kind() {
	case reflect.Array:
		if t.Go.Len() != len(t.Elems) {
			return nil, Errorf(CodeUnsupportedType, path, "tuple of %d items held by %s", len(t.Elems), t.Go)
		}
		elemType = func(int) reflect.Type { return t.Go.Elem() }
	case reflect.Struct:
		if t.Go.NumField() != len(t.Elems) {
			return nil, Errorf(CodeUnsupportedType, path, "tuple of %d items held by %s", len(t.Elems), t.Go)
		}
		for i := range t.Go.NumField() {
			if !t.Go.Field(i).IsExported() {
				return nil, Errorf(CodeUnsupportedType, path, "tuple item %d of %s is unexported", i, t.Go)
			}
		}
		elemType = func(i int) reflect.Type { return t.Go.Field(i).Type }
	default:
		return nil, unsupported(path, t)
	}

	elems, err := b.buildAll(t.Elems, path.Index, elemType)
	if err != nil {
		return nil, err
	}

	return &tupleMapping{t: t, elems: elems, lenient: b.opts.Has(options.CategoryLenientTuple)}, nil
}

func (m *tupleMapping) Type() shape.Type { return m.t }

func (m *tupleMapping) item(rv reflect.Value, i int) reflect.Value {
	if rv.Kind() == reflect.Array {
		return rv.Index(i)
	}

	return rv.Field(i)
}

func (m *tupleMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv, err := checkType(rv, m.t.Go, path)
	if err != nil {
		return nil, err
	}

	out := make([]any, len(m.elems))
	for i, elem := range m.elems {
		if out[i], err = elem.Lower(m.item(rv, i), path.Index(i)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Unlower rejects a list of the wrong length unless the plan is lenient, in which
// case the shorter length wins and missing items stay zero.
func (m *tupleMapping) Unlower(s any, path Path) (reflect.Value, error) {
	items, ok := s.([]any)
	if !ok {
		return reflect.Value{}, mismatch(path, "list", structural.Describe(s))
	}

	n := len(m.elems)
	if len(items) != n {
		if !m.lenient {
			return reflect.Value{}, mismatch(path, count(n)+" items", count(len(items)))
		}
		n = min(n, len(items))
	}

	out := reflect.New(m.t.Go).Elem()
	for i := range n {
		v, err := m.elems[i].Unlower(items[i], path.Index(i))
		if err != nil {
			return reflect.Value{}, err
		}
		m.item(out, i).Set(v)
	}

	return out, nil
}
