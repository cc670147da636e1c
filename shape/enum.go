package shape

import (
	"fmt"
	"reflect"
	"strings"
)

// EnumMember is one named value of an Enum.
type EnumMember struct {
	Name  string
	Value any
}

// Enum is a closed set of named values, written by name.
type Enum struct {
	Members []EnumMember
	Go      reflect.Type
}

// EnumOf describes the members of E, named by their String method.
func EnumOf[E interface {
	comparable
	fmt.Stringer
}](members ...E) *Enum {
	list := make([]EnumMember, len(members))
	for i, m := range members {
		list[i] = EnumMember{Name: m.String(), Value: m}
	}

	return &Enum{Members: list, Go: reflect.TypeFor[E]()}
}

// NamedEnumOf describes an enum with explicit names.
func NamedEnumOf(t reflect.Type, members ...EnumMember) *Enum {
	return &Enum{Members: members, Go: t}
}

func (e *Enum) GoType() reflect.Type { return e.Go }

func (e *Enum) String() string {
	names := make([]string, len(e.Members))
	for i, m := range e.Members {
		names[i] = m.Name
	}

	return typeName(e.Go) + "{" + strings.Join(names, ", ") + "}"
}
