// Package jsonfmt reads and writes structural values as JSON documents.
//
// Typed values pass through mapping plans built without native dates, so
// timestamps travel as RFC 3339 strings. Output keeps map order, does not escape
// non-ASCII text and ends with a newline.
package jsonfmt

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"ags/mapping"
	"ags/options"
	"ags/shape"
)

var (
	ErrInvalid       = errors.New("invalid JSON")
	ErrNonFinite     = errors.New("JSON has no representation for non-finite floats")
	ErrNotStructural = errors.New("value is not structural")
)

// Options the JSON plans are built with.
const Options = options.CategoryNone

var plans = mapping.Cache{Options: Options}

// Backend is a JSON text style.
type Backend struct {
	// Indent is the number of spaces per nesting level. Zero writes everything
	// on one line.
	Indent int
}

// Default indents by two spaces.
var Default = Backend{Indent: 2}

// Encode writes the structural value s.
func (b Backend) Encode(w io.Writer, s any) error {
	var buf bytes.Buffer
	e := encoder{buf: &buf, indent: b.Indent}
	if err := e.value(s, 0); err != nil {
		return err
	}
	buf.WriteByte('\n')

	_, err := buf.WriteTo(w)
	return err
}

// Decode reads one JSON document into a structural value.
func (b Backend) Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return decode(data)
}

// Dump lowers v as described by t and writes it.
func (b Backend) Dump(w io.Writer, v any, t shape.Type) error {
	m, err := plans.Get(t)
	if err != nil {
		return err
	}

	s, err := mapping.Lower(m, v)
	if err != nil {
		return err
	}

	return b.Encode(w, s)
}

// Dumps is Dump into a string.
func (b Backend) Dumps(v any, t shape.Type) (string, error) {
	var sb strings.Builder
	if err := b.Dump(&sb, v, t); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Load reads a document and unlowers it as described by t.
func (b Backend) Load(r io.Reader, t shape.Type) (any, error) {
	m, err := plans.Get(t)
	if err != nil {
		return nil, err
	}

	s, err := b.Decode(r)
	if err != nil {
		return nil, err
	}

	return mapping.Unlower(m, s)
}

// Loads is Load from a string.
func (b Backend) Loads(text string, t shape.Type) (any, error) {
	return b.Load(strings.NewReader(text), t)
}

func Encode(w io.Writer, s any) error              { return Default.Encode(w, s) }
func Decode(r io.Reader) (any, error)              { return Default.Decode(r) }
func Dump(w io.Writer, v any, t shape.Type) error  { return Default.Dump(w, v, t) }
func Dumps(v any, t shape.Type) (string, error)    { return Default.Dumps(v, t) }
func Load(r io.Reader, t shape.Type) (any, error)  { return Default.Load(r, t) }
func Loads(text string, t shape.Type) (any, error) { return Default.Loads(text, t) }

// Marshal encodes v as described by the default registry.
func Marshal[T any](v T) ([]byte, error) {
	plan, err := planFor[T]()
	if err != nil {
		return nil, err
	}

	s, err := plan.Lower(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Default.Encode(&buf, s); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes data into a T as described by the default registry.
func Unmarshal[T any](data []byte) (T, error) {
	var zero T

	plan, err := planFor[T]()
	if err != nil {
		return zero, err
	}

	s, err := decode(data)
	if err != nil {
		return zero, err
	}

	return plan.Unlower(s)
}

func planFor[T any]() (*mapping.Plan[T], error) {
	m, err := plans.Get(shape.Of[T]())
	if err != nil {
		return nil, err
	}

	return mapping.Wrap[T](m)
}
