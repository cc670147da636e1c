package mapping

import (
	"fmt"
	"reflect"

	"ags/shape"
	"ags/structural"
)

var argumentsType = reflect.TypeFor[*shape.Arguments]()

type signatureMapping struct {
	t      *shape.Signature
	params []Mapping
	names  []string
	index  map[string]int
}

func (b *builder) signature(t *shape.Signature, path Path) (Mapping, error) {
	m := &signatureMapping{
		t:      t,
		params: make([]Mapping, len(t.Params)),
		names:  make([]string, len(t.Params)),
		index:  make(map[string]int, len(t.Params)),
	}

	for i, p := range t.Params {
		paramPath := path.Field(p.Name)
		if _, dup := m.index[p.Name]; dup {
			return nil, Errorf(CodeUnsupportedType, paramPath, "parameter %s is declared twice in %s", shape.Repr(p.Name), t)
		}

		pm, err := b.build(p.Type, paramPath)
		if err != nil {
			return nil, err
		}

		m.params[i] = pm
		m.names[i] = p.Name
		m.index[p.Name] = i
	}

	return m, nil
}

func (m *signatureMapping) Type() shape.Type { return m.t }

// Lower writes the bound arguments by name in parameter order.
func (m *signatureMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv, err := checkType(rv, argumentsType, path)
	if err != nil {
		return nil, err
	}

	args := rv.Interface().(*shape.Arguments)
	if args == nil {
		return nil, mismatch(path, "bound arguments", "None")
	}

	out := structural.NewMap(len(m.params))
	for _, name := range args.Names() {
		i, ok := m.index[name]
		if !ok {
			return nil, notIn(path, m.names, name)
		}

		v, _ := args.Get(name)
		s, err := m.params[i].Lower(reflect.ValueOf(v), path.Field(name))
		if err != nil {
			return nil, err
		}
		out.Set(name, s)
	}

	return out, nil
}

// Unlower converts each present argument, then binds them by name; unknown or
// missing parameters fail the binding.
func (m *signatureMapping) Unlower(s any, path Path) (reflect.Value, error) {
	entries, ok := s.(*structural.Map)
	if !ok {
		return reflect.Value{}, mismatch(path, "map", structural.Describe(s))
	}

	named := make(map[string]any, entries.Len())
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		i, ok := m.index[pair.Key]
		if !ok {
			err := construct(path, fmt.Errorf("%w %s", shape.ErrUnexpectedArgument, shape.Repr(pair.Key)))
			return reflect.Value{}, withHint(err, pair.Key, m.names)
		}

		v, err := m.params[i].Unlower(pair.Value, path.Field(pair.Key))
		if err != nil {
			return reflect.Value{}, err
		}
		named[pair.Key] = v.Interface()
	}

	args, err := m.t.BindNamed(named)
	if err != nil {
		return reflect.Value{}, construct(path, err)
	}

	return reflect.ValueOf(args), nil
}
