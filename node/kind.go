package node

//go:generate go tool stringer -type=DispatcherEnum -output=kind_string.go

type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherPrimitive
	DispatcherComplex
	DispatcherBytes
	DispatcherTime
	DispatcherDuration
	DispatcherInterface
	DispatcherPointer
	DispatcherSlice
	DispatcherArray
	DispatcherMap
	DispatcherStruct

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)
