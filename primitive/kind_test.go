package primitive_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ags/primitive"
)

func Example() {
	type Celsius float64
	type Label string
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Celsius(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Label(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	fmt.Println(primitive.FromReflectType(nil))
	// Output:
	// KindInt
	// KindString
	// KindFloat64
	// KindString
	// KindInt64
	// KindEnum(0)
	// KindEnum(0)
}

func TestBounds(t *testing.T) {
	tests := []struct {
		kind   primitive.KindEnum
		lo, hi int64
	}{
		{primitive.KindInt8, math.MinInt8, math.MaxInt8},
		{primitive.KindInt16, math.MinInt16, math.MaxInt16},
		{primitive.KindInt32, math.MinInt32, math.MaxInt32},
		{primitive.KindInt64, math.MinInt64, math.MaxInt64},
		{primitive.KindUint8, 0, math.MaxUint8},
		{primitive.KindUint16, 0, math.MaxUint16},
		{primitive.KindUint32, 0, math.MaxUint32},
		{primitive.KindUint64, 0, math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			lo, hi := tt.kind.Bounds()
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestToStructural(t *testing.T) {
	v, err := primitive.ToStructural(primitive.KindUint16, reflect.ValueOf(uint16(7)))
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	v, err = primitive.ToStructural(primitive.KindFloat32, reflect.ValueOf(float32(2.5)))
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = primitive.ToStructural(primitive.KindUint64, reflect.ValueOf(uint64(math.MaxUint64)))
	assert.ErrorIs(t, err, primitive.ErrOutOfRange)
}

func TestFromInt(t *testing.T) {
	type Small int8

	rv, err := primitive.FromInt(primitive.KindInt8, -128, reflect.TypeFor[Small]())
	require.NoError(t, err)
	assert.Equal(t, Small(-128), rv.Interface())

	_, err = primitive.FromInt(primitive.KindInt8, 128, reflect.TypeFor[Small]())
	assert.ErrorIs(t, err, primitive.ErrOutOfRange)

	_, err = primitive.FromInt(primitive.KindUint, -1, reflect.TypeFor[uint]())
	assert.ErrorIs(t, err, primitive.ErrOutOfRange)

	rv, err = primitive.FromInt(primitive.KindFloat64, 3, reflect.TypeFor[float64]())
	require.NoError(t, err)
	assert.Equal(t, 3.0, rv.Interface())
}

func TestFromFloat(t *testing.T) {
	rv, err := primitive.FromFloat(primitive.KindFloat32, 0.5, reflect.TypeFor[float32]())
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), rv.Interface())

	_, err = primitive.FromFloat(primitive.KindFloat32, math.MaxFloat64, reflect.TypeFor[float32]())
	assert.ErrorIs(t, err, primitive.ErrOutOfRange)

	rv, err = primitive.FromFloat(primitive.KindFloat32, math.Inf(1), reflect.TypeFor[float32]())
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(rv.Interface().(float32)), 1))
}
