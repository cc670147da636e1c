package mapping

import (
	"cmp"
	"reflect"
	"slices"

	"ags/internal/common"
	"ags/options"
	"ags/shape"
	"ags/structural"
)

var validatorType = reflect.TypeFor[shape.Validator]()

type dictMapping struct {
	t     *shape.Map
	value Mapping
}

func (b *builder) dict(t *shape.Map, path Path) (Mapping, error) {
	if t.Go == nil || t.Go.Kind() != reflect.Map || t.Go.Key().Kind() != reflect.String || t.Value == nil {
		return nil, unsupported(path, t)
	}

	values, err := b.buildAll([]shape.Type{t.Value},
		func(int) Path { return path.Each() },
		func(int) reflect.Type { return t.Go.Elem() })
	if err != nil {
		return nil, err
	}

	return &dictMapping{t: t, value: values[0]}, nil
}

func (m *dictMapping) Type() shape.Type { return m.t }

// Lower writes entries sorted by key.
func (m *dictMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv, err := checkType(rv, m.t.Go, path)
	if err != nil {
		return nil, err
	}

	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int { return cmp.Compare(a.String(), b.String()) })

	out := structural.NewMap(len(keys))
	for _, key := range keys {
		v, err := m.value.Lower(rv.MapIndex(key), path.Key(key.String()))
		if err != nil {
			return nil, err
		}
		out.Set(key.String(), v)
	}

	return out, nil
}

func (m *dictMapping) Unlower(s any, path Path) (reflect.Value, error) {
	entries, ok := s.(*structural.Map)
	if !ok {
		return reflect.Value{}, mismatch(path, "map", structural.Describe(s))
	}

	out := reflect.MakeMapWithSize(m.t.Go, entries.Len())
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		v, err := m.value.Unlower(pair.Value, path.Key(pair.Key))
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetMapIndex(reflect.ValueOf(pair.Key).Convert(m.t.Go.Key()), v)
	}

	return out, nil
}

type recordField struct {
	name  string
	index []int
	m     Mapping
}

type recordMapping struct {
	t        *shape.Record
	fields   []recordField
	names    []string
	declared map[string]struct{}
	strict   bool
	validate bool
}

func (b *builder) record(t *shape.Record, path Path) (Mapping, error) {
	if t.Go == nil || t.Go.Kind() != reflect.Struct {
		return nil, unsupported(path, t)
	}

	if name, dup := common.Duplicate(t.Fields, func(f shape.Field) string { return f.Name }); dup {
		return nil, Errorf(CodeUnsupportedType, path, "field key %s is declared twice in %s", shape.Repr(name), t)
	}

	m := &recordMapping{
		t:        t,
		fields:   make([]recordField, len(t.Fields)),
		names:    make([]string, len(t.Fields)),
		declared: make(map[string]struct{}, len(t.Fields)),
		strict:   b.opts.Has(options.CategoryStrictFields),
		validate: reflect.PointerTo(t.Go).Implements(validatorType),
	}

	for i, f := range t.Fields {
		fieldPath := path.Field(f.Name)

		sf, ok := structField(t.Go, f)
		if !ok {
			return nil, Errorf(CodeUnsupportedType, fieldPath, "%s has no exported field %s", t.Go, f.GoName)
		}
		if f.Type == nil {
			return nil, unsupported(fieldPath, f.Type)
		}

		fm, err := b.build(f.Type, fieldPath)
		if err != nil {
			return nil, err
		}
		if err := expectGoType(fm, sf.Type, fieldPath); err != nil {
			return nil, err
		}

		m.fields[i] = recordField{name: f.Name, index: sf.Index, m: fm}
		m.names[i] = f.Name
		m.declared[f.Name] = struct{}{}
	}

	return m, nil
}

// structField resolves f by its index path, or by its Go name when the path is empty.
func structField(t reflect.Type, f shape.Field) (reflect.StructField, bool) {
	if len(f.Index) == 0 {
		sf, ok := t.FieldByName(f.GoName)
		return sf, ok && sf.IsExported()
	}

	for _, i := range f.Index[:len(f.Index)-1] {
		if t.Kind() != reflect.Struct || i >= t.NumField() || t.Field(i).Type.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		t = t.Field(i).Type
	}

	last := f.Index[len(f.Index)-1]
	if last >= t.NumField() {
		return reflect.StructField{}, false
	}

	sf := t.Field(last)
	sf.Index = f.Index
	return sf, sf.IsExported()
}

func (m *recordMapping) Type() shape.Type { return m.t }

// Lower writes the fields in declaration order.
func (m *recordMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv, err := checkType(rv, m.t.Go, path)
	if err != nil {
		return nil, err
	}

	out := structural.NewMap(len(m.fields))
	for _, f := range m.fields {
		v, err := f.m.Lower(rv.FieldByIndex(f.index), path.Field(f.name))
		if err != nil {
			return nil, err
		}
		out.Set(f.name, v)
	}

	return out, nil
}

// Unlower fills the fields present in s and leaves the others zero. Keys that
// are not fields are ignored unless the plan is strict.
func (m *recordMapping) Unlower(s any, path Path) (reflect.Value, error) {
	entries, ok := s.(*structural.Map)
	if !ok {
		return reflect.Value{}, mismatch(path, "map", structural.Describe(s))
	}

	if m.strict {
		for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
			if _, ok := m.declared[pair.Key]; !ok {
				err := Errorf(CodeTypeMismatch, path, "unexpected field %s of %s", shape.Repr(pair.Key), m.t)
				return reflect.Value{}, withHint(err, pair.Key, m.names)
			}
		}
	}

	out := reflect.New(m.t.Go).Elem()
	for _, f := range m.fields {
		item, ok := entries.Get(f.name)
		if !ok {
			continue
		}

		v, err := f.m.Unlower(item, path.Field(f.name))
		if err != nil {
			return reflect.Value{}, err
		}
		out.FieldByIndex(f.index).Set(v)
	}

	if m.validate {
		if err := out.Addr().Interface().(shape.Validator).Validate(); err != nil {
			return reflect.Value{}, construct(path, err)
		}
	}

	return out, nil
}
