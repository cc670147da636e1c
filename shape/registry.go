package shape

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/stoewer/go-strcase"

	"ags/node"
	"ags/tuple"
)

var (
	ErrNoGoType         = errors.New("descriptor has no Go type")
	ErrNotRegistrable   = errors.New("descriptor cannot be registered by Go type")
	ErrNotAnAlternative = errors.New("type does not implement the union interface")
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	tuplePkgPath = reflect.TypeFor[tuple.Pair[int, int]]().PkgPath()
	fixedType    = reflect.TypeFor[tuple.Fixed]()
	variadicType = reflect.TypeFor[tuple.Variadic]()
)

// SnakeCase names record keys like field_name.
func SnakeCase(name string) string { return strcase.SnakeCase(name) }

// LowerCamelCase names record keys like fieldName.
func LowerCamelCase(name string) string { return strcase.LowerCamelCase(name) }

// KebabCase names record keys like field-name.
func KebabCase(name string) string { return strcase.KebabCase(name) }

type Option func(*Registry)

// WithFieldNamer sets the function that turns Go field names into record keys
// for fields without a name in their `shape` tag.
func WithFieldNamer(namer func(string) string) Option {
	return func(r *Registry) { r.namer = namer }
}

// Registry holds explicit descriptors and derives the rest from Go types.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	types   map[reflect.Type]Type
	derived map[reflect.Type]Type
	namer   func(string) string
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		types:   make(map[reflect.Type]Type),
		derived: make(map[reflect.Type]Type),
		namer:   func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Default is the registry behind the package-level functions.
var Default = NewRegistry()

// Register makes d the descriptor of its Go type.
func (r *Registry) Register(d Type) error {
	if d == nil || d.GoType() == nil {
		return ErrNoGoType
	}
	if _, ok := d.(*Signature); ok {
		return fmt.Errorf("%w: %s", ErrNotRegistrable, d)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.types[d.GoType()] = d
	clear(r.derived)

	return nil
}

// RegisterUnion registers a union held by the interface type iface whose
// alternatives are the member types with their default tags.
func (r *Registry) RegisterUnion(iface reflect.Type, members ...reflect.Type) error {
	alts := make([]Alternative, 0, len(members))
	for _, m := range members {
		if iface.Kind() == reflect.Interface && !m.Implements(iface) {
			return fmt.Errorf("%w: %s is not a %s", ErrNotAnAlternative, m, iface)
		}
		alts = append(alts, Member(r.Describe(m)))
	}

	return r.Register(UnionOf(iface, alts...))
}

// Lookup returns the registered descriptor of t.
func (r *Registry) Lookup(t reflect.Type) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.types[t]
	return d, ok
}

// Describe returns the descriptor of t, registered or derived.
func (r *Registry) Describe(t reflect.Type) Type {
	r.mu.RLock()
	d, ok := r.types[t]
	if !ok {
		d, ok = r.derived[t]
	}
	r.mu.RUnlock()

	if ok {
		return d
	}

	var tracker node.Tracker
	d = r.derive(t, &tracker)

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.derived[t]; ok {
		return cached
	}
	r.derived[t] = d

	return d
}

// Func describes the parameters of fn, named in order by names.
func (r *Registry) Func(fn any, names ...string) (*Signature, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic %s", ErrNotCallable, t)
	}
	if t.NumIn() != len(names) {
		return nil, fmt.Errorf("%w: %s takes %d parameters, %d names given", ErrNotCallable, t, t.NumIn(), len(names))
	}

	params := make([]Param, len(names))
	for i, name := range names {
		params[i] = ParamOf(name, r.Describe(t.In(i)))
	}

	return SignatureOf(params...), nil
}

func (r *Registry) derive(t reflect.Type, tracker *node.Tracker) Type {
	if t == nil {
		return &Unknown{Reason: "nil type"}
	}

	if d, ok := r.Lookup(t); ok {
		return d
	}

	if t.Implements(reducerType) && !(t.Kind() == reflect.Pointer && t.Elem().Implements(reducerType)) {
		return r.deriveOpaque(t, tracker)
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		if !tracker.Enter(t) {
			return &Unknown{Go: t, Reason: "cyclic type"}
		}
		defer tracker.Leave(t)
	}

	if t.PkgPath() == tuplePkgPath {
		switch {
		case t.Implements(fixedType):
			elems := make([]Type, t.NumField())
			for i := range elems {
				elems[i] = r.derive(t.Field(i).Type, tracker)
			}
			return TupleOf(t, elems...)
		case t.Implements(variadicType):
			return UniformTupleOf(t, r.derive(t.Elem(), tracker))
		}
	}

	switch node.Dispatch(t) {
	case node.DispatcherPrimitive:
		return PrimitiveOf(t)
	case node.DispatcherComplex:
		return ComplexOf(t)
	case node.DispatcherBytes:
		return BytesOf(t)
	case node.DispatcherTime:
		return DateTimeOf(t, DateTimestamp)
	case node.DispatcherDuration:
		return DateTimeOf(t, DateDuration)
	case node.DispatcherInterface:
		return &Unknown{Go: t, Reason: "interface without a registered union"}
	case node.DispatcherPointer:
		return UnionOf(t, Member(r.derive(t.Elem(), tracker)), Member(None))
	case node.DispatcherSlice:
		return ListOf(t, r.derive(t.Elem(), tracker))
	case node.DispatcherArray:
		elem := r.derive(t.Elem(), tracker)
		elems := make([]Type, t.Len())
		for i := range elems {
			elems[i] = elem
		}
		return TupleOf(t, elems...)
	case node.DispatcherMap:
		return MapOf(t, r.derive(t.Elem(), tracker))
	case node.DispatcherStruct:
		return RecordOf(t, r.fields(t, nil, tracker)...)
	default:
		return &Unknown{Go: t}
	}
}

func (r *Registry) deriveOpaque(t reflect.Type, tracker *node.Tracker) Type {
	reducer, ok := reflect.Zero(t).Interface().(Reducer)
	if !ok {
		return &Unknown{Go: t, Reason: "nil reducer"}
	}

	ctor, err := node.ParseConstructor(reducer.Constructor())
	if err != nil {
		return &Unknown{Go: t, Reason: err.Error()}
	}
	if ctor.Result != t {
		return &Unknown{Go: t, Reason: "constructor " + ctor.String() + " returns " + ctor.Result.String()}
	}

	if !tracker.Enter(t) {
		return &Unknown{Go: t, Reason: "cyclic type"}
	}
	defer tracker.Leave(t)

	return &Opaque{Arg: r.derive(ctor.Arg, tracker), Construct: ctor, Go: t}
}

func (r *Registry) fields(t reflect.Type, index []int, tracker *node.Tracker) []Field {
	fields := make([]Field, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get("shape")
		if tag == "-" {
			continue
		}

		name, opts := parseTag(tag)
		path := append(slices.Clone(index), i)

		if f.Anonymous && name == "" && r.flattens(f.Type) {
			fields = append(fields, r.fields(f.Type, path, tracker)...)
			continue
		}
		if !f.IsExported() {
			continue
		}

		if name == "" {
			name = r.namer(f.Name)
		}

		var ft Type
		switch {
		case f.Type == timeType && opts.Contains("date"):
			ft = DateTimeOf(f.Type, DateDate)
		case f.Type == timeType && opts.Contains("clock"):
			ft = DateTimeOf(f.Type, DateClock)
		default:
			ft = r.derive(f.Type, tracker)
		}

		fields = append(fields, Field{Name: name, GoName: f.Name, Index: path, Type: ft})
	}

	return fields
}

// flattens reports whether an embedded field of type t contributes its fields
// to the embedding record.
func (r *Registry) flattens(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t == timeType || t.PkgPath() == tuplePkgPath {
		return false
	}
	if t.Implements(reducerType) {
		return false
	}

	_, registered := r.Lookup(t)
	return !registered
}

// Register adds d to the Default registry.
func Register(d Type) error { return Default.Register(d) }

// RegisterUnion adds a union to the Default registry.
func RegisterUnion(iface reflect.Type, members ...reflect.Type) error {
	return Default.RegisterUnion(iface, members...)
}

// Func describes fn's parameters with the Default registry.
func Func(fn any, names ...string) (*Signature, error) { return Default.Func(fn, names...) }

// Of describes T with the Default registry.
func Of[T any]() Type { return Default.Describe(reflect.TypeFor[T]()) }

// For describes T with r.
func For[T any](r *Registry) Type { return r.Describe(reflect.TypeFor[T]()) }
