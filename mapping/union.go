package mapping

import (
	"reflect"

	"ags/internal/common"
	"ags/shape"
	"ags/structural"
)

var variantType = reflect.TypeFor[shape.Variant]()

// union strips None from the alternatives: no alternative left is None itself,
// one left is an optional of it, several are an optional union of the rest.
func (b *builder) union(t *shape.Union, path Path) (Mapping, error) {
	if t.Go == nil {
		return nil, unsupported(path, t)
	}

	rest := make([]shape.Alternative, 0, len(t.Alternatives))
	for _, alt := range t.Alternatives {
		if alt.Type == nil {
			return nil, unsupported(path, t)
		}
		if !shape.IsNone(alt.Type) {
			rest = append(rest, alt)
		}
	}

	if len(rest) == len(t.Alternatives) {
		return b.tagged(t, path)
	}

	if common.IsEmpty(rest) {
		return b.primitive(shape.None, path)
	}

	innerGo := t.Go
	if innerGo.Kind() == reflect.Pointer {
		innerGo = innerGo.Elem()
	}

	var inner Mapping
	var err error
	if alt, _ := common.First(rest); common.IsSingle(rest) {
		inner, err = b.build(alt.Type, path)
	} else {
		inner, err = b.tagged(shape.UnionOf(innerGo, rest...), path)
	}
	if err != nil {
		return nil, err
	}

	return b.optional(t, inner, path)
}

type optionalMapping struct {
	t     *shape.Union
	inner Mapping
	ptr   bool
}

func (b *builder) optional(t *shape.Union, inner Mapping, path Path) (Mapping, error) {
	m := &optionalMapping{t: t, inner: inner}

	switch t.Go.Kind() {
	case reflect.Pointer:
		if err := expectGoType(inner, t.Go.Elem(), path); err != nil {
			return nil, err
		}
		m.ptr = true
	case reflect.Interface:
		if err := expectGoType(inner, t.Go, path); err != nil {
			return nil, err
		}
	default:
		return nil, Errorf(CodeUnsupportedType, path, "optional %s needs a pointer or interface Go type, not %s", t, t.Go)
	}

	return m, nil
}

func (m *optionalMapping) Type() shape.Type { return m.t }

func (m *optionalMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv = concrete(rv)
	if !rv.IsValid() {
		return nil, nil
	}

	if m.ptr && rv.Type() == m.t.Go {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	return m.inner.Lower(rv, path)
}

func (m *optionalMapping) Unlower(s any, path Path) (reflect.Value, error) {
	if s == nil {
		return reflect.Zero(m.t.Go), nil
	}

	v, err := m.inner.Unlower(s, path)
	if err != nil {
		return reflect.Value{}, err
	}

	if m.ptr {
		ptr := reflect.New(m.t.Go.Elem())
		ptr.Elem().Set(v)
		return ptr, nil
	}

	return store(v, m.t.Go), nil
}

type alternative struct {
	tag string
	m   Mapping
}

type unionMapping struct {
	t      *shape.Union
	alts   []alternative
	tags   []string
	byTag  map[string]int
	byType map[reflect.Type]int
}

func (b *builder) tagged(t *shape.Union, path Path) (Mapping, error) {
	if common.IsEmpty(t.Alternatives) {
		return nil, unsupported(path, t)
	}

	if tag, dup := common.Duplicate(t.Alternatives, shape.Alternative.TagName); dup {
		return nil, Errorf(CodeUnsupportedType, path, "union tag %s is declared twice in %s", shape.Repr(tag), t)
	}
	if goType, dup := common.Duplicate(t.Alternatives, func(a shape.Alternative) reflect.Type { return a.Type.GoType() }); dup {
		return nil, Errorf(CodeUnsupportedType, path, "union type %s is declared twice in %s", typeName(goType), t)
	}

	m := &unionMapping{
		t:      t,
		alts:   make([]alternative, len(t.Alternatives)),
		tags:   make([]string, len(t.Alternatives)),
		byTag:  make(map[string]int, len(t.Alternatives)),
		byType: make(map[reflect.Type]int, len(t.Alternatives)),
	}

	for i, alt := range t.Alternatives {
		tag := alt.TagName()
		altPath := path.Tag(tag)

		inner, err := b.build(alt.Type, altPath)
		if err != nil {
			return nil, err
		}
		if err := expectGoType(inner, t.Go, altPath); err != nil {
			return nil, err
		}

		m.alts[i] = alternative{tag: tag, m: inner}
		m.tags[i] = tag
		m.byTag[tag] = i
		m.byType[inner.Type().GoType()] = i
	}

	return m, nil
}

func (m *unionMapping) Type() shape.Type { return m.t }

// Lower picks the alternative by the value's VariantTag when it has one, and by
// its dynamic Go type otherwise.
func (m *unionMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv = concrete(rv)
	if !rv.IsValid() {
		return nil, mismatch(path, "one of "+joinNames(m.tags), "None")
	}

	i, ok := m.byType[rv.Type()]
	if rv.Type().Implements(variantType) {
		tag := rv.Interface().(shape.Variant).VariantTag()
		if i, ok = m.byTag[tag]; !ok {
			return nil, notIn(path, m.tags, tag)
		}
	}
	if !ok {
		return nil, mismatch(path, "one of "+joinNames(m.tags), typeName(rv.Type()))
	}

	alt := m.alts[i]
	inner, err := alt.m.Lower(rv, path.Tag(alt.tag))
	if err != nil {
		return nil, err
	}

	return structural.MapOf(alt.tag, inner), nil
}

func (m *unionMapping) Unlower(s any, path Path) (reflect.Value, error) {
	entries, ok := s.(*structural.Map)
	if !ok {
		return reflect.Value{}, mismatch(path, "map", structural.Describe(s))
	}
	if entries.Len() != 1 {
		return reflect.Value{}, mismatch(path, "a single map entry", count(entries.Len()))
	}

	entry := entries.Oldest()
	i, ok := m.byTag[entry.Key]
	if !ok {
		return reflect.Value{}, notIn(path, m.tags, entry.Key)
	}

	alt := m.alts[i]
	v, err := alt.m.Unlower(entry.Value, path.Tag(alt.tag))
	if err != nil {
		return reflect.Value{}, err
	}

	return store(v, m.t.Go), nil
}
