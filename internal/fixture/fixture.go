// Package fixture holds a sample call shared by the codec tests: the arguments of
// Func(a A, b []B, direction Direction) and their expected documents.
package fixture

import (
	"reflect"
	"time"

	"ags/shape"
)

type A struct {
	X int
	Y float64
}

// ABC is one of "a", "b" or "c".
type ABC string

type Sub struct {
	B     []byte
	Greek *string
}

type B struct {
	Abc ABC
	Sub Sub
}

// Direction is Left or Right.
type Direction interface{ isDirection() }

type Left struct{ B bool }

type Right struct{ When time.Time }

func (Left) isDirection()  {}
func (Right) isDirection() {}

// Func is the sample callable.
func Func(a A, b []B, direction Direction) string {
	return string(b[0].Abc) + reflect.TypeOf(direction).Name()
}

// When is the timestamp carried by Right.
var When = time.Unix(1753600000, 0).UTC()

// Registry describes the sample types with snake_case keys.
func Registry() *shape.Registry {
	reg := shape.NewRegistry(shape.WithFieldNamer(shape.SnakeCase))

	if err := reg.Register(shape.LiteralOf(ABC("a"), ABC("b"), ABC("c"))); err != nil {
		panic(err)
	}
	err := reg.RegisterUnion(reflect.TypeFor[Direction](), reflect.TypeFor[Left](), reflect.TypeFor[Right]())
	if err != nil {
		panic(err)
	}

	return reg
}

// Signature describes Func's parameters.
func Signature(reg *shape.Registry) *shape.Signature {
	sig, err := reg.Func(Func, "a", "b", "direction")
	if err != nil {
		panic(err)
	}

	return sig
}

// Bound binds the sample arguments to sig.
func Bound(sig *shape.Signature) *shape.Arguments {
	greek := "αβγ"
	args, err := sig.Bind(
		A{X: 1, Y: 2.5},
		[]B{
			{Abc: "a", Sub: Sub{B: []byte("foo"), Greek: &greek}},
			{Abc: "b", Sub: Sub{B: []byte("bar")}},
		},
		Right{When: When},
	)
	if err != nil {
		panic(err)
	}

	return args
}

// JSON is the JSON document of the bound arguments.
const JSON = `{
  "a": {
    "x": 1,
    "y": 2.5
  },
  "b": [
    {
      "abc": "a",
      "sub": {
        "b": "utf8:foo",
        "greek": "αβγ"
      }
    },
    {
      "abc": "b",
      "sub": {
        "b": "utf8:bar",
        "greek": null
      }
    }
  ],
  "direction": {
    "Right": {
      "when": "2025-07-27T07:06:40Z"
    }
  }
}
`

// YAML is the YAML document of the bound arguments.
const YAML = `a:
  x: 1
  y: 2.5
b:
  - abc: a
    sub:
      b: utf8:foo
      greek: αβγ
  - abc: b
    sub:
      b: utf8:bar
      greek: null
direction:
  Right:
    when: 2025-07-27T07:06:40Z
`
