// Package format picks a document backend by file name and does the file I/O
// around it.
package format

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ags/format/jsonfmt"
	"ags/format/yamlfmt"
	"ags/mapping"
	"ags/shape"
)

// Backend encodes structural values to one document format.
type Backend interface {
	Encode(w io.Writer, s any) error
	Decode(r io.Reader) (any, error)
	Dump(w io.Writer, v any, t shape.Type) error
	Load(r io.Reader, t shape.Type) (any, error)
}

var (
	_ Backend = jsonfmt.Backend{}
	_ Backend = yamlfmt.Backend{}
)

var backends = map[string]Backend{
	".json": jsonfmt.Default,
	".yml":  yamlfmt.Default,
}

// BackendFor returns the backend for the suffix of path.
func BackendFor(path string) (Backend, error) {
	if b, ok := backends[filepath.Ext(path)]; ok {
		return b, nil
	}

	return nil, mapping.Errorf(mapping.CodeUnrecognizedFormat, "", "unrecognized file format %q", filepath.Base(path))
}

// Load reads the file at path and unlowers it as described by t.
func Load(path string, t shape.Type) (any, error) {
	b, err := BackendFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	v, err := b.Load(f, t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// Dump lowers v as described by t and writes it to the file at path.
func Dump(path string, v any, t shape.Type) error {
	b, err := BackendFor(path)
	if err != nil {
		return err
	}

	return writeFile(path, func(w io.Writer) error { return b.Dump(w, v, t) })
}

// ReadFile decodes the file at path into a structural value.
func ReadFile(path string) (any, error) {
	b, err := BackendFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := b.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// WriteFile encodes the structural value s to the file at path.
func WriteFile(path string, s any) error {
	b, err := BackendFor(path)
	if err != nil {
		return err
	}

	return writeFile(path, func(w io.Writer) error { return b.Encode(w, s) })
}

// writeFile creates path and removes it again when encoding fails.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
