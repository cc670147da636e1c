package shape

import (
	"reflect"
	"strings"
)

// Field is one record entry.
type Field struct {
	// Name is the structural key.
	Name string
	// GoName resolves the struct field when Index is empty.
	GoName string
	// Index is the reflect field index path, flattened through embedded structs.
	Index []int
	Type  Type
}

// FieldOf describes the struct field goName under key name.
func FieldOf(name, goName string, t Type) Field {
	return Field{Name: name, GoName: goName, Type: t}
}

// Record is a struct with named fields.
type Record struct {
	Fields []Field
	Go     reflect.Type
}

func RecordOf(t reflect.Type, fields ...Field) *Record {
	return &Record{Fields: fields, Go: t}
}

func (r *Record) GoType() reflect.Type { return r.Go }

func (r *Record) String() string { return typeName(r.Go) }

// Lookup returns the field keyed name.
func (r *Record) Lookup(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

type tagOptions string

func parseTag(tag string) (string, tagOptions) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, tagOptions(opts)
}

func (o tagOptions) Contains(option string) bool {
	for s := string(o); s != ""; {
		var name string
		name, s, _ = strings.Cut(s, ",")
		if name == option {
			return true
		}
	}

	return false
}

// Validator is implemented by record pointers that check their fields once
// every present field has been filled.
type Validator interface {
	Validate() error
}
