package jsonfmt_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ags/format/jsonfmt"
	"ags/internal/fixture"
	"ags/mapping"
	"ags/shape"
	"ags/structural"
)

func TestFixtureDocument(t *testing.T) {
	sig := fixture.Signature(fixture.Registry())
	args := fixture.Bound(sig)

	text, err := jsonfmt.Dumps(args, sig)
	require.NoError(t, err)
	assert.Equal(t, fixture.JSON, text)

	v, err := jsonfmt.Loads(fixture.JSON, sig)
	require.NoError(t, err)

	back, ok := v.(*shape.Arguments)
	require.True(t, ok, spew.Sdump(v))
	assert.Equal(t, args.Values(), back.Values())

	out, err := back.Call(fixture.Func)
	require.NoError(t, err)
	assert.Equal(t, []any{"aRight"}, out)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"null", nil, "null"},
		{"int", int64(-7), "-7"},
		{"integral float", 3.0, "3.0"},
		{"small float", 1e-7, "1e-07"},
		{"text", "naïve <b>\"x\"</b>", `"naïve <b>\"x\"</b>"`},
		{"empty list", []any{}, "[]"},
		{"empty map", structural.NewMap(0), "{}"},
		{"nested", structural.MapOf("k", []any{true, "v"}), "{\n  \"k\": [\n    true,\n    \"v\"\n  ]\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, jsonfmt.Encode(&buf, tt.in))
			assert.Equal(t, tt.want+"\n", buf.String())
		})
	}
}

func TestEncodeCompact(t *testing.T) {
	var buf bytes.Buffer
	err := jsonfmt.Backend{}.Encode(&buf, structural.MapOf("a", []any{int64(1), 2.5}, "b", nil))
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1,2.5],"b":null}`+"\n", buf.String())
}

func TestEncodeRejects(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, jsonfmt.Encode(&buf, math.Inf(1)), jsonfmt.ErrNonFinite)
	assert.ErrorIs(t, jsonfmt.Encode(&buf, []any{42}), jsonfmt.ErrNotStructural)
}

func TestDecode(t *testing.T) {
	v, err := jsonfmt.Decode(strings.NewReader(`{"z": 1, "a": [1.5, 2e3, -0, "s", null, false], "m": {}}`))
	require.NoError(t, err)

	want := structural.MapOf(
		"z", int64(1),
		"a", []any{1.5, 2000.0, int64(0), "s", nil, false},
		"m", structural.NewMap(0),
	)
	assert.True(t, structural.Equal(want, v), spew.Sdump(v))

	m := v.(*structural.Map)
	assert.Equal(t, []string{"z", "a", "m"}, structural.Keys(m))
}

func TestDecodeRejects(t *testing.T) {
	for _, text := range []string{"", "{", `{"a": }`, "[1, 2,]", "123456789012345678901234567890"} {
		_, err := jsonfmt.Decode(strings.NewReader(text))
		assert.ErrorIs(t, err, jsonfmt.ErrInvalid, "%q", text)
	}
}

type reading struct {
	Sensor string
	Values []float64
	Taken  *int64
}

func TestMarshal(t *testing.T) {
	data, err := jsonfmt.Marshal(reading{Sensor: "t1", Values: []float64{20.5, 21}})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"Sensor\": \"t1\",\n  \"Values\": [\n    20.5,\n    21.0\n  ],\n  \"Taken\": null\n}\n", string(data))

	back, err := jsonfmt.Unmarshal[reading](data)
	require.NoError(t, err)
	assert.Equal(t, reading{Sensor: "t1", Values: []float64{20.5, 21}}, back)

	_, err = jsonfmt.Unmarshal[reading]([]byte(`{"Sensor": 1}`))
	assert.ErrorIs(t, err, mapping.ErrTypeMismatch)
	assert.EqualError(t, err, "expects str, got int in .Sensor")
}
