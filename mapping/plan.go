package mapping

import (
	"fmt"
	"reflect"

	"ags/options"
	"ags/shape"
)

// Plan is a Mapping for values of static type T.
type Plan[T any] struct {
	m Mapping
}

// NewPlan builds the plan for t, whose Go type must be T.
func NewPlan[T any](t shape.Type, opts options.CategoryEnum) (*Plan[T], error) {
	if err := describes[T](t); err != nil {
		return nil, err
	}

	m, err := Build(t, opts)
	if err != nil {
		return nil, err
	}

	return &Plan[T]{m: m}, nil
}

// Wrap types an already built plan. m must produce values of type T.
func Wrap[T any](m Mapping) (*Plan[T], error) {
	if err := describes[T](m.Type()); err != nil {
		return nil, err
	}

	return &Plan[T]{m: m}, nil
}

func describes[T any](t shape.Type) error {
	if t == nil || t.GoType() == reflect.TypeFor[T]() {
		return nil
	}

	return Errorf(CodeUnsupportedType, "", "descriptor %s describes %s, not %s",
		t, typeName(t.GoType()), reflect.TypeFor[T]())
}

// For builds the plan for T as described by the default shape registry.
func For[T any](opts options.CategoryEnum) (*Plan[T], error) {
	return NewPlan[T](shape.Of[T](), opts)
}

// Must panics if err is not nil and returns p otherwise.
func Must[T any](p *Plan[T], err error) *Plan[T] {
	if err != nil {
		panic(fmt.Sprintf("mapping: %v", err))
	}

	return p
}

func (p *Plan[T]) Mapping() Mapping { return p.m }

// Lower converts v to its structural value.
func (p *Plan[T]) Lower(v T) (any, error) {
	return p.m.Lower(reflect.ValueOf(&v).Elem(), "")
}

// Unlower converts s back to a T.
func (p *Plan[T]) Unlower(s any) (T, error) {
	var out T

	rv, err := p.m.Unlower(s, "")
	if err != nil {
		return out, err
	}

	if rv.IsValid() && rv.Type().AssignableTo(reflect.TypeFor[T]()) {
		reflect.ValueOf(&out).Elem().Set(rv)
	}

	return out, nil
}
