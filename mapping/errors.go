package mapping

import (
	"errors"
	"fmt"
	"strconv"

	"ags/internal/match"
	"ags/shape"
)

//go:generate go tool stringer -type=Code -trimprefix=Code -output=code_string.go

// Code classifies mapping errors.
type Code int

const (
	_ Code = iota

	// CodeTypeMismatch is a value that does not have the declared shape.
	CodeTypeMismatch
	// CodeUnsupportedType is a descriptor no plan can be built for.
	CodeUnsupportedType
	// CodeReduceMismatch is a reduction that names a type other than the declared one.
	CodeReduceMismatch
	// CodeReduceArity is a reduction that returns other than one argument.
	CodeReduceArity
	// CodeUnrecognizedFormat is a file name without a known document format.
	CodeUnrecognizedFormat
	// CodeConstruct is a constructor, validator or argument binding that failed.
	CodeConstruct
)

// Error is a mapping failure at a path.
type Error struct {
	Code    Code
	Message string
	Path    Path
	// Err is the underlying cause, if any.
	Err error
}

// Sentinels for errors.Is; an *Error matches the sentinel of its Code.
var (
	ErrTypeMismatch       = &Error{Code: CodeTypeMismatch}
	ErrUnsupportedType    = &Error{Code: CodeUnsupportedType}
	ErrReduceMismatch     = &Error{Code: CodeReduceMismatch}
	ErrReduceArity        = &Error{Code: CodeReduceArity}
	ErrUnrecognizedFormat = &Error{Code: CodeUnrecognizedFormat}
	ErrConstruct          = &Error{Code: CodeConstruct}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code.String()
	}

	if e.Path != "" {
		return msg + " in " + e.Path.String()
	}

	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches sentinels, i.e. errors without a message, by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Code == e.Code
}

func (e *Error) withPath(path Path) *Error {
	e.Path = path
	return e
}

// Errorf returns an *Error with a formatted message.
func Errorf(code Code, path Path, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Path: path}
}

// AsError returns the *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func mismatch(path Path, expect, got string) *Error {
	return Errorf(CodeTypeMismatch, path, "expects %s, got %s", expect, got)
}

// notIn reports a value outside a declared set of names.
func notIn(path Path, declared []string, got any) *Error {
	return withHint(mismatch(path, "one of "+joinNames(quoteAll(declared)), shape.Repr(got)), got, declared)
}

// withHint appends a "did you mean" hint when a declared name is close to got.
func withHint(err *Error, got any, declared []string) *Error {
	if s, ok := got.(string); ok {
		if hint, ok := match.Suggest(s, declared); ok {
			err.Message += " (did you mean " + shape.Repr(hint) + "?)"
		}
	}

	return err
}

func unsupported(path Path, t shape.Type) *Error {
	name := "<nil>"
	if t != nil {
		name = t.String()
	}

	return Errorf(CodeUnsupportedType, path, "cannot find a mapping for type %s", name)
}

func construct(path Path, err error) *Error {
	return &Error{Code: CodeConstruct, Message: err.Error(), Path: path, Err: err}
}

func count(n int) string { return strconv.Itoa(n) }
