package shape

import (
	"reflect"

	"ags/node"
)

// Reducer is implemented by types that lower through a single constructor argument.
//
// Reduce returns the type to rebuild and the constructor arguments. Constructor
// returns a function accepted by node.ParseConstructor that rebuilds the value
// from that argument.
type Reducer interface {
	Reduce() (reflect.Type, []any)
	Constructor() any
}

var reducerType = reflect.TypeFor[Reducer]()

// Opaque is a type that lowers through its Reducer.
type Opaque struct {
	Arg       Type
	Construct node.Constructor
	Go        reflect.Type
}

func (o *Opaque) GoType() reflect.Type { return o.Go }

func (o *Opaque) String() string { return typeName(o.Go) }

// Reduce calls v's Reducer.
func (o *Opaque) Reduce(v any) (reflect.Type, []any, bool) {
	r, ok := v.(Reducer)
	if !ok {
		return nil, nil, false
	}

	t, args := r.Reduce()
	return t, args, true
}
