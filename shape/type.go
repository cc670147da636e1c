package shape

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"ags/primitive"
)

// Type describes the static shape of a value.
type Type interface {
	// GoType is the Go type of typed values of this shape.
	GoType() reflect.Type
	String() string
}

var anyType = reflect.TypeFor[any]()

// Primitive is a bool, string, integer or float Go type, or None.
type Primitive struct {
	Kind primitive.KindEnum
	Go   reflect.Type
}

// None is the absent value. Its typed form is an untyped nil.
var None = &Primitive{Kind: primitive.KindNone, Go: anyType}

// PrimitiveOf describes t as a primitive. A non-primitive t yields a zero Kind that
// mapping.Build rejects.
func PrimitiveOf(t reflect.Type) *Primitive {
	return &Primitive{Kind: primitive.FromReflectType(t), Go: t}
}

func (p *Primitive) GoType() reflect.Type { return p.Go }

func (p *Primitive) String() string {
	if p.Kind == primitive.KindNone {
		return "None"
	}

	return typeName(p.Go)
}

// IsNone reports whether t is the None primitive.
func IsNone(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Kind == primitive.KindNone
}

// Literal is a fixed set of primitive values.
type Literal struct {
	Values []any
	Go     reflect.Type
}

// LiteralOf describes the set of values. The Go type is the values' common type,
// or any when they differ.
func LiteralOf(values ...any) *Literal {
	var common reflect.Type
	for i, v := range values {
		t := reflect.TypeOf(v)
		if i == 0 {
			common = t
		} else if t != common {
			common = anyType
			break
		}
	}

	if common == nil {
		common = anyType
	}

	return &Literal{Values: values, Go: common}
}

func (l *Literal) GoType() reflect.Type { return l.Go }

func (l *Literal) String() string {
	parts := make([]string, len(l.Values))
	for i, v := range l.Values {
		parts[i] = Repr(v)
	}

	return "Literal[" + strings.Join(parts, ", ") + "]"
}

// Complex is a complex64 or complex128 Go type.
type Complex struct{ Go reflect.Type }

func ComplexOf(t reflect.Type) *Complex { return &Complex{Go: t} }

func (c *Complex) GoType() reflect.Type { return c.Go }
func (c *Complex) String() string       { return typeName(c.Go) }

// Bytes is a byte slice Go type.
type Bytes struct{ Go reflect.Type }

func BytesOf(t reflect.Type) *Bytes { return &Bytes{Go: t} }

func (b *Bytes) GoType() reflect.Type { return b.Go }
func (b *Bytes) String() string       { return typeName(b.Go) }

// List is a slice whose elements share one shape.
type List struct {
	Elem Type
	Go   reflect.Type
}

func ListOf(t reflect.Type, elem Type) *List { return &List{Elem: elem, Go: t} }

func (l *List) GoType() reflect.Type { return l.Go }
func (l *List) String() string       { return "List[" + l.Elem.String() + "]" }

// Tuple is a fixed-length sequence. Go is an array type, or a struct type whose
// exported fields are the elements in declaration order.
type Tuple struct {
	Elems []Type
	Go    reflect.Type
}

func TupleOf(t reflect.Type, elems ...Type) *Tuple { return &Tuple{Elems: elems, Go: t} }

func (t *Tuple) GoType() reflect.Type { return t.Go }

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}

	return "Tuple[" + strings.Join(parts, ", ") + "]"
}

// UniformTuple is a variable-length tuple whose elements share one shape.
type UniformTuple struct {
	Elem Type
	Go   reflect.Type
}

func UniformTupleOf(t reflect.Type, elem Type) *UniformTuple {
	return &UniformTuple{Elem: elem, Go: t}
}

func (u *UniformTuple) GoType() reflect.Type { return u.Go }
func (u *UniformTuple) String() string       { return "Tuple[" + u.Elem.String() + ", ...]" }

// Map is a map keyed by a string kind.
type Map struct {
	Value Type
	Go    reflect.Type
}

func MapOf(t reflect.Type, value Type) *Map { return &Map{Value: value, Go: t} }

func (m *Map) GoType() reflect.Type { return m.Go }
func (m *Map) String() string       { return "Dict[str, " + m.Value.String() + "]" }

//go:generate go tool stringer -type=DateKind -trimprefix=Date -output=datekind_string.go

// DateKind selects the text form of a date/time value.
type DateKind int

const (
	DateTimestamp DateKind = iota // RFC 3339 with nanoseconds
	DateDate                      // 2006-01-02
	DateClock                     // 15:04:05.999999999
	DateDuration                  // time.Duration.String
)

// DateTime is time.Time or time.Duration.
type DateTime struct {
	Kind DateKind
	Go   reflect.Type
}

func DateTimeOf(t reflect.Type, kind DateKind) *DateTime { return &DateTime{Kind: kind, Go: t} }

func (d *DateTime) GoType() reflect.Type { return d.Go }
func (d *DateTime) String() string       { return d.Kind.String() }

// Unknown is a Go type that no descriptor covers. mapping.Build rejects it.
type Unknown struct {
	Go     reflect.Type
	Reason string
}

func (u *Unknown) GoType() reflect.Type { return u.Go }

func (u *Unknown) String() string {
	if u.Reason == "" {
		return typeName(u.Go)
	}

	return typeName(u.Go) + " (" + u.Reason + ")"
}

// Repr prints v for messages: string kinds in single quotes, nil as None,
// anything else as fmt does.
func Repr(v any) string {
	if v == nil {
		return "None"
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return fmt.Sprint(v)
	}

	q := strconv.Quote(rv.String())
	return "'" + strings.ReplaceAll(q[1:len(q)-1], `\"`, `"`) + "'"
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
