package structural

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind names the shape of a structural value.
type Kind int

const (
	KindInvalid Kind = iota // invalid
	KindNull                // null
	KindBool                // bool
	KindInt                 // int
	KindFloat               // float
	KindString              // str
	KindList                // list
	KindMap                 // map
	KindTime                // timestamp
)

// KindOf classifies v. Values outside the structural model are KindInvalid.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int64:
		return KindInt
	case float64:
		return KindFloat
	case string:
		return KindString
	case []any:
		return KindList
	case *Map:
		return KindMap
	case time.Time:
		return KindTime
	default:
		return KindInvalid
	}
}

// Describe names v for diagnostics: its structural kind, or its Go type when v
// is not a structural value.
func Describe(v any) string {
	if k := KindOf(v); k != KindInvalid {
		return k.String()
	}

	return reflect.TypeOf(v).String()
}
