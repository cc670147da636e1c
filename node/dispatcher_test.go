package node_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ags/node"
)

func TestDispatch(t *testing.T) {
	type label string
	type octets []byte
	type point struct{ X, Y int }

	tests := []struct {
		typ  reflect.Type
		want node.DispatcherEnum
	}{
		{reflect.TypeFor[int](), node.DispatcherPrimitive},
		{reflect.TypeFor[label](), node.DispatcherPrimitive},
		{reflect.TypeFor[bool](), node.DispatcherPrimitive},
		{reflect.TypeFor[complex64](), node.DispatcherComplex},
		{reflect.TypeFor[[]byte](), node.DispatcherBytes},
		{reflect.TypeFor[octets](), node.DispatcherBytes},
		{reflect.TypeFor[time.Time](), node.DispatcherTime},
		{reflect.TypeFor[time.Duration](), node.DispatcherDuration},
		{reflect.TypeFor[any](), node.DispatcherInterface},
		{reflect.TypeFor[*point](), node.DispatcherPointer},
		{reflect.TypeFor[**point](), node.DispatcherUnknown},
		{reflect.TypeFor[[]string](), node.DispatcherSlice},
		{reflect.TypeFor[[3]int](), node.DispatcherArray},
		{reflect.TypeFor[map[string]int](), node.DispatcherMap},
		{reflect.TypeFor[map[label]int](), node.DispatcherMap},
		{reflect.TypeFor[map[int]int](), node.DispatcherUnknown},
		{reflect.TypeFor[point](), node.DispatcherStruct},
		{reflect.TypeFor[chan int](), node.DispatcherUnknown},
		{reflect.TypeFor[func()](), node.DispatcherUnknown},
		{nil, node.DispatcherUnknown},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.typ != nil {
			name = tt.typ.String()
		}

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, node.Dispatch(tt.typ))
		})
	}
}
