package shape

import (
	"reflect"
	"strings"
)

// Variant lets a value pick its union alternative by tag instead of by Go type.
type Variant interface {
	VariantTag() string
}

// Alternative is one member of a Union.
type Alternative struct {
	// Tag overrides the default tag, which is the Go type's name.
	Tag  string
	Type Type
}

// Member is an alternative with the default tag.
func Member(t Type) Alternative { return Alternative{Type: t} }

// Tagged is an alternative with an explicit tag.
func Tagged(tag string, t Type) Alternative { return Alternative{Tag: tag, Type: t} }

// TagName is the tag the alternative is written under.
func (a Alternative) TagName() string {
	switch {
	case a.Tag != "":
		return a.Tag
	case a.Type == nil:
		return ""
	case IsNone(a.Type):
		return "None"
	}

	t := a.Type.GoType()
	if t == nil {
		return ""
	}
	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}

// Union is a closed set of alternatives. A None alternative makes it optional.
// Go is the type holding any alternative: an interface, or a pointer for optionals.
type Union struct {
	Alternatives []Alternative
	Go           reflect.Type
}

// UnionOf describes a union held by values of Go type t.
func UnionOf(t reflect.Type, alts ...Alternative) *Union {
	return &Union{Alternatives: alts, Go: t}
}

// OptionalOf describes t or None. The Go type is t's type when it can already hold
// nil, and a pointer to it otherwise.
func OptionalOf(t Type) *Union {
	goType := t.GoType()
	if goType == nil {
		goType = anyType
	}

	switch goType.Kind() {
	case reflect.Pointer, reflect.Interface:
	default:
		goType = reflect.PointerTo(goType)
	}

	return &Union{Alternatives: []Alternative{Member(t), Member(None)}, Go: goType}
}

func (u *Union) GoType() reflect.Type { return u.Go }

func (u *Union) String() string {
	parts := make([]string, 0, len(u.Alternatives))
	optional := false
	for _, alt := range u.Alternatives {
		if alt.Type != nil && IsNone(alt.Type) {
			optional = true
			continue
		}
		parts = append(parts, altString(alt))
	}

	inner := strings.Join(parts, ", ")
	if len(parts) != 1 {
		inner = "Union[" + inner + "]"
	}
	if optional {
		return "Optional[" + inner + "]"
	}

	return inner
}

func altString(alt Alternative) string {
	if alt.Type == nil {
		return "<nil>"
	}
	if alt.Tag != "" {
		return alt.Tag + "=" + alt.Type.String()
	}

	return alt.Type.String()
}
