package node

import (
	"reflect"
	"time"

	"ags/primitive"
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

// Dispatch classifies a Go type by the structural shape it can take. Special library
// types are checked before their underlying kinds: time.Duration is an int64 and
// []byte is a slice, but neither maps like one.
func Dispatch(t reflect.Type) DispatcherEnum {
	if t == nil {
		return DispatcherUnknown
	}

	switch t {
	case timeType:
		return DispatcherTime
	case durationType:
		return DispatcherDuration
	}

	if primitive.FromReflectType(t) != 0 {
		return DispatcherPrimitive
	}

	switch t.Kind() {
	default:
		return DispatcherUnknown
	case reflect.Complex64, reflect.Complex128:
		return DispatcherComplex
	case reflect.Interface:
		return DispatcherInterface
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Ptr {
			return DispatcherUnknown
		}
		return DispatcherPointer
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return DispatcherBytes
		}
		return DispatcherSlice
	case reflect.Array:
		return DispatcherArray
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return DispatcherUnknown
		}
		return DispatcherMap
	case reflect.Struct:
		return DispatcherStruct
	}
}
