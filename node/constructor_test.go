package node_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ags/node"
)

type moreThanError interface {
	error
	More()
}

func empty()                          { panic("not implemented") }
func wrong(int) (string, error, bool) { panic("not implemented") }

func full(int) (string, bool, error)          { panic("not implemented") }
func customError(int) (string, moreThanError) { panic("not implemented") }

func ExampleConstructor() {
	desc, err := node.ParseConstructor(full)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Arg.Kind(), desc.Result.Kind(), desc.HasBool, desc.HasErr)

	desc, err = node.ParseConstructor(strconv.Itoa)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Arg.Kind(), desc.Result.Kind(), desc.HasBool, desc.HasErr)

	desc, err = node.ParseConstructor(strconv.Atoi)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Arg.Kind(), desc.Result.Kind(), desc.HasBool, desc.HasErr)

	desc, err = node.ParseConstructor(customError)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Arg.Kind(), desc.Result.Kind(), desc.HasBool, desc.HasErr)

	_, err = node.ParseConstructor(empty)
	fmt.Println(err)

	_, err = node.ParseConstructor(wrong)
	fmt.Println(err)

	_, err = node.ParseConstructor(42)
	fmt.Println(err)

	// Output:
	// <nil> node_test full int string true true
	// <nil> strconv Itoa int string false false
	// <nil> strconv Atoi string int false true
	// <nil> node_test customError int string false true
	// provided function is not a recognizable constructor
	// provided function is not a recognizable constructor
	// provided constructor is not a function
}

type celsius float64

var errFrozen = errors.New("below absolute zero")

func newCelsius(v float64) (celsius, error) {
	if v < -273.15 {
		return 0, errFrozen
	}
	return celsius(v), nil
}

func positive(v int) (uint, bool) {
	if v < 0 {
		return 0, false
	}
	return uint(v), true
}

func TestConstructorCall(t *testing.T) {
	ctor, err := node.ParseConstructor(newCelsius)
	require.NoError(t, err)

	out, err := ctor.Call(21.5)
	require.NoError(t, err)
	assert.Equal(t, celsius(21.5), out)

	_, err = ctor.Call(-300.0)
	assert.ErrorIs(t, err, errFrozen)

	_, err = ctor.Call("warm")
	assert.Error(t, err)

	out, err = ctor.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, celsius(0), out)
	assert.Equal(t, "node_test.newCelsius", ctor.String())
}

func TestConstructorCallRejected(t *testing.T) {
	ctor, err := node.ParseConstructor(positive)
	require.NoError(t, err)

	out, err := ctor.Call(3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), out)

	_, err = ctor.Call(-1)
	assert.ErrorIs(t, err, node.ErrConstructorRejected)
}

func TestParseConstructorDoublePointer(t *testing.T) {
	_, err := node.ParseConstructor(func(**int) int { return 0 })
	assert.ErrorIs(t, err, node.ErrDoublePointer)

	_, err = node.ParseConstructor(func(int) **int { return nil })
	assert.ErrorIs(t, err, node.ErrDoublePointer)

	_, err = node.ParseConstructor(func(...int) int { return 0 })
	assert.ErrorIs(t, err, node.ErrIsNotAConstructor)
}
