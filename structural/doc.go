// Package structural defines the format-agnostic document model exchanged between
// mapping plans and text backends.
//
// A structural value is one of:
//
//	nil          null
//	bool         boolean
//	int64        integer
//	float64      float
//	string       UTF-8 text
//	[]any        ordered sequence of structural values
//	*Map         string-keyed map keeping insertion order
//	time.Time    timestamp, only for backends with native timestamp syntax
//
// Maps keep insertion order because YAML emission is order-sensitive.
package structural
