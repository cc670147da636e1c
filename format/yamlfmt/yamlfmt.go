// Package yamlfmt reads and writes structural values as YAML documents.
//
// Typed values pass through mapping plans built with native dates: timestamps
// and dates are YAML timestamps rather than strings. Maps keep their key order.
package yamlfmt

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"ags/mapping"
	"ags/options"
	"ags/shape"
)

var (
	ErrNotStructural = errors.New("value is not structural")
	ErrKey           = errors.New("mapping key is not a string")
	ErrTag           = errors.New("unsupported YAML tag")
)

// Options the YAML plans are built with.
const Options = options.CategoryNativeDate

var plans = mapping.Cache{Options: Options}

// Backend is a YAML text style.
type Backend struct {
	// Indent is the number of spaces per nesting level.
	Indent int
}

// Default indents by two spaces.
var Default = Backend{Indent: 2}

// Encode writes the structural value s as one document.
func (b Backend) Encode(w io.Writer, s any) error {
	node, err := encode(s)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	if b.Indent > 0 {
		enc.SetIndent(b.Indent)
	}
	if err := enc.Encode(node); err != nil {
		return err
	}

	return enc.Close()
}

// Decode reads the first document of r. An empty stream decodes to nil.
func (b Backend) Decode(r io.Reader) (any, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	return decode(&doc)
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

	s, err := Default.Decode(bytes.NewReader(data))
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
