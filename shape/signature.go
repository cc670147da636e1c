package shape

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrTooManyArguments   = errors.New("too many arguments")
	ErrMissingArgument    = errors.New("missing argument")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrNotCallable        = errors.New("not callable")
)

var argumentsType = reflect.TypeFor[*Arguments]()

// Param is one named parameter of a Signature.
type Param struct {
	Name       string
	Type       Type
	Default    any
	HasDefault bool
}

func ParamOf(name string, t Type) Param { return Param{Name: name, Type: t} }

// WithDefault returns p with a default value, making it optional when binding.
func (p Param) WithDefault(v any) Param {
	p.Default, p.HasDefault = v, true
	return p
}

// Signature describes the named parameters of a callable. Its typed values are
// *Arguments.
type Signature struct {
	Params []Param
}

func SignatureOf(params ...Param) *Signature { return &Signature{Params: params} }

func (s *Signature) GoType() reflect.Type { return argumentsType }

func (s *Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.Name + " " + p.Type.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func (s *Signature) index(name string) int {
	for i, p := range s.Params {
		if p.Name == name {
			return i
		}
	}

	return -1
}

// Bind binds values to parameters by position.
func (s *Signature) Bind(values ...any) (*Arguments, error) {
	if len(values) > len(s.Params) {
		return nil, fmt.Errorf("%w: %d given, %d accepted", ErrTooManyArguments, len(values), len(s.Params))
	}

	args := s.empty()
	for i, v := range values {
		args.values[i], args.bound[i] = v, true
	}

	return args, args.check()
}

// BindNamed binds values to parameters by name.
func (s *Signature) BindNamed(values map[string]any) (*Arguments, error) {
	args := s.empty()
	for name, v := range values {
		i := s.index(name)
		if i < 0 {
			return nil, fmt.Errorf("%w %s", ErrUnexpectedArgument, Repr(name))
		}
		args.values[i], args.bound[i] = v, true
	}

	return args, args.check()
}

func (s *Signature) empty() *Arguments {
	return &Arguments{
		sig:    s,
		values: make([]any, len(s.Params)),
		bound:  make([]bool, len(s.Params)),
	}
}

// Arguments is a set of values bound to a Signature's parameters.
type Arguments struct {
	sig    *Signature
	values []any
	bound  []bool
}

func (a *Arguments) check() error {
	for i, p := range a.sig.Params {
		if !a.bound[i] && !p.HasDefault {
			return fmt.Errorf("%w %s", ErrMissingArgument, Repr(p.Name))
		}
	}

	return nil
}

func (a *Arguments) Signature() *Signature { return a.sig }

// Get returns the value bound to name.
func (a *Arguments) Get(name string) (any, bool) {
	i := a.sig.index(name)
	if i < 0 || !a.bound[i] {
		return nil, false
	}

	return a.values[i], true
}

// Names returns the bound parameter names in parameter order.
func (a *Arguments) Names() []string {
	names := make([]string, 0, len(a.values))
	for i, p := range a.sig.Params {
		if a.bound[i] {
			names = append(names, p.Name)
		}
	}

	return names
}

// Values returns one value per parameter, with defaults for unbound ones.
func (a *Arguments) Values() []any {
	values := make([]any, len(a.values))
	for i, p := range a.sig.Params {
		if a.bound[i] {
			values[i] = a.values[i]
		} else {
			values[i] = p.Default
		}
	}

	return values
}

// Call invokes fn with the arguments and returns its results.
func (a *Arguments) Call(fn any) ([]any, error) {
	fnVal := reflect.ValueOf(fn)
	if fnVal.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}

	fnType := fnVal.Type()
	if fnType.IsVariadic() || fnType.NumIn() != len(a.sig.Params) {
		return nil, fmt.Errorf("%w: %s does not accept %s", ErrNotCallable, fnType, a.sig)
	}

	in := make([]reflect.Value, fnType.NumIn())
	for i, v := range a.Values() {
		want := fnType.In(i)
		if v == nil {
			in[i] = reflect.Zero(want)
			continue
		}

		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(want) {
			return nil, fmt.Errorf("%w: argument %q is %s, want %s",
				ErrNotCallable, a.sig.Params[i].Name, rv.Type(), want)
		}
		in[i] = rv
	}

	out := fnVal.Call(in)
	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}

	return results, nil
}
