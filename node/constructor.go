package node

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrIsNotAConstructor         = errors.New("provided function is not a recognizable constructor")
	ErrConstructorIsNotAFunction = errors.New("provided constructor is not a function")
	ErrDoublePointer             = errors.New("constructor function does not support double pointers")
	ErrConstructorRejected       = errors.New("constructor rejected its argument")
)

// Constructor is a parsed single-argument function rebuilding an opaque value.
type Constructor struct {
	Arg, Result  reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// ParseConstructor inspects the provided function and returns a Constructor if it is
// a valid constructor function.
//
// Supports interfaces:
//   - func(arg Type) (dst Type)
//   - func(arg Type) (dst Type, bool)
//   - func(arg Type) (dst Type, error)
//   - func(arg Type) (dst Type, bool, error)
func ParseConstructor(fn any) (Constructor, error) {
	if fn == nil {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return Constructor{}, ErrIsNotAConstructor
	}

	arg := fnType.In(0)
	if arg.Kind() == reflect.Ptr && arg.Elem().Kind() == reflect.Ptr {
		return Constructor{}, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return Constructor{}, ErrDoublePointer
	}

	alias, name := FuncName(fnVal)

	ctor := Constructor{
		Arg:          arg,
		Result:       dst,
		Name:         name,
		PackageAlias: alias,
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Constructor{}, ErrIsNotAConstructor

	case 1:
		return ctor, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return Constructor{}, ErrIsNotAConstructor
		case last.Kind() == reflect.Bool:
			ctor.HasBool = true
		case isError(last):
			ctor.HasErr = true
		}
		return ctor, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return Constructor{}, ErrIsNotAConstructor
		}

		ctor.HasBool = true
		ctor.HasErr = true
		return ctor, nil
	}
}

// Call invokes the constructor. arg must be assignable to c.Arg; a nil arg stands for
// the zero value of c.Arg.
func (c Constructor) Call(arg any) (any, error) {
	in := reflect.New(c.Arg).Elem()
	if arg != nil {
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(c.Arg) {
			return nil, fmt.Errorf("argument of type %s is not assignable to %s", av.Type(), c.Arg)
		}
		in.Set(av)
	}

	out := c.fn.Call([]reflect.Value{in})

	if c.HasErr {
		if errVal := out[len(out)-1]; !errVal.IsNil() {
			return nil, errVal.Interface().(error)
		}
	}

	if c.HasBool && !out[1].Bool() {
		return nil, ErrConstructorRejected
	}

	return out[0].Interface(), nil
}

// String returns the qualified function name, e.g. "geo.NewPoint".
func (c Constructor) String() string {
	if c.PackageAlias == "" {
		return c.Name
	}

	return c.PackageAlias + "." + c.Name
}
