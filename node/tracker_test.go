package node_test

import (
	"fmt"
	"reflect"

	"ags/node"
)

func ExampleTracker() {
	var d node.Tracker

	intType := reflect.TypeFor[int]()

	fmt.Println("first enter:", d.Enter(intType))
	fmt.Println("cyclic enter:", d.Enter(intType))
	fmt.Println("seen before leave:", d.Seen(intType))

	d.Leave(intType)
	fmt.Println("seen after leave:", d.Seen(intType))
	fmt.Println("enter again:", d.Enter(intType))

	// Output:
	// first enter: true
	// cyclic enter: false
	// seen before leave: false
	// seen after leave: true
	// enter again: true
}
