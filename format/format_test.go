package format_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ags/format"
	"ags/format/jsonfmt"
	"ags/format/yamlfmt"
	"ags/internal/fixture"
	"ags/mapping"
	"ags/shape"
	"ags/structural"
)

func TestBackendFor(t *testing.T) {
	tests := []struct {
		path string
		want format.Backend
	}{
		{"doc.json", jsonfmt.Default},
		{"dir.d/doc.yml", yamlfmt.Default},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := format.BackendFor(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, path := range []string{"doc.txt", "doc", "doc.yaml", "json"} {
		_, err := format.BackendFor(path)
		assert.ErrorIs(t, err, mapping.ErrUnrecognizedFormat, path)
	}

	_, err := format.BackendFor("notes.txt")
	assert.EqualError(t, err, `unrecognized file format "notes.txt"`)
}

func TestDumpLoad(t *testing.T) {
	sig := fixture.Signature(fixture.Registry())
	args := fixture.Bound(sig)
	dir := t.TempDir()

	for name, want := range map[string]string{"args.json": fixture.JSON, "args.yml": fixture.YAML} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, format.Dump(path, args, sig))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, want, string(data))

			v, err := format.Load(path, sig)
			require.NoError(t, err)
			assert.Equal(t, args.Values(), v.(*shape.Arguments).Values())
		})
	}
}

func TestDumpFailureRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")

	err := format.Dump(path, "text", shape.Of[int]())
	assert.ErrorIs(t, err, mapping.ErrTypeMismatch)
	assert.NoFileExists(t, path)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := format.Load(filepath.Join(dir, "missing.json"), shape.Of[int]())
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "word.yml")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0o644))

	_, err = format.Load(path, shape.Of[int]())
	assert.ErrorIs(t, err, mapping.ErrTypeMismatch)
	assert.EqualError(t, err, path+": expects int, got str")
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	doc := structural.MapOf("name", "ags", "tags", []any{"codec", "go"})

	yml := filepath.Join(dir, "doc.yml")
	require.NoError(t, format.WriteFile(yml, doc))

	s, err := format.ReadFile(yml)
	require.NoError(t, err)
	assert.True(t, structural.Equal(doc, s))

	js := filepath.Join(dir, "doc.json")
	require.NoError(t, format.WriteFile(js, s))

	data, err := os.ReadFile(js)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"ags\",\n  \"tags\": [\n    \"codec\",\n    \"go\"\n  ]\n}\n", string(data))
}
