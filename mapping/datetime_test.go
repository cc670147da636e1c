package mapping_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ags/mapping"
	"ags/options"
	"ags/shape"
)

var when = time.Date(2025, 7, 27, 7, 6, 40, 500, time.UTC)

func TestTimestamp(t *testing.T) {
	text := build[time.Time](t, 0)
	assert.Equal(t, "2025-07-27T07:06:40.0000005Z", roundTrip(t, text, when))

	native := build[time.Time](t, options.CategoryNativeDate)
	assert.Equal(t, when, roundTrip(t, native, when))

	v, err := mapping.Unlower(native, "2025-07-27T07:06:40.0000005Z")
	require.NoError(t, err)
	assert.True(t, when.Equal(v.(time.Time)))

	_, err = mapping.Unlower(text, when)
	assertCode(t, err, mapping.CodeTypeMismatch, "expects str, got timestamp")

	_, err = mapping.Unlower(text, "27/07/2025")
	assertCode(t, err, mapping.CodeTypeMismatch, "expects an ISO 8601 timestamp, got '27/07/2025'")

	_, err = mapping.Unlower(native, int64(0))
	assertCode(t, err, mapping.CodeTypeMismatch, "expects timestamp or str, got int")
}

func TestTimestampWithoutOffset(t *testing.T) {
	m := build[time.Time](t, 0)

	tests := []struct {
		text string
		want time.Time
	}{
		{"2025-07-27T09:06:40", time.Date(2025, 7, 27, 9, 6, 40, 0, time.UTC)},
		{"2025-07-27T09:06:40.500000", time.Date(2025, 7, 27, 9, 6, 40, 500_000_000, time.UTC)},
		{"2025-07-27T09:06:40+02:00", time.Date(2025, 7, 27, 7, 6, 40, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v, err := mapping.Unlower(m, tt.text)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(v.(time.Time)), "got %v", v)
		})
	}

	v, err := mapping.Unlower(m, "2025-07-27T09:06:40")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, v.(time.Time).Location())
}

func TestDateAndClock(t *testing.T) {
	timeType := reflect.TypeFor[time.Time]()
	day := time.Date(2025, 7, 27, 0, 0, 0, 0, time.UTC)
	noon := time.Date(0, 1, 1, 12, 30, 0, 0, time.UTC)
	afternoon := time.Date(2025, 7, 27, 15, 4, 5, 0, time.UTC)

	date, err := mapping.Build(shape.DateTimeOf(timeType, shape.DateDate), 0)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-27", roundTrip(t, date, day))

	nativeDate, err := mapping.Build(shape.DateTimeOf(timeType, shape.DateDate), options.CategoryNativeDate)
	require.NoError(t, err)
	assert.Equal(t, day, roundTrip(t, nativeDate, day))

	clock, err := mapping.Build(shape.DateTimeOf(timeType, shape.DateClock), options.CategoryNativeDate)
	require.NoError(t, err)
	assert.Equal(t, "12:30:00", roundTrip(t, clock, noon))

	rejects := []struct {
		name   string
		m      mapping.Mapping
		v      time.Time
		expect string
	}{
		{"date with a clock", date, afternoon, "a date at midnight UTC"},
		{"native date with a clock", nativeDate, afternoon, "a date at midnight UTC"},
		{"date in another zone", date, time.Date(2025, 7, 27, 0, 0, 0, 0, time.FixedZone("CEST", 2*60*60)), "a date at midnight UTC"},
		{"clock with a date", clock, afternoon, "a time of day on 0000-01-01 UTC"},
	}

	for _, tt := range rejects {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapping.Lower(tt.m, tt.v)
			assertCode(t, err, mapping.CodeTypeMismatch, "expects "+tt.expect+", got "+tt.v.String())
		})
	}

	_, err = mapping.Unlower(nativeDate, afternoon)
	assertCode(t, err, mapping.CodeTypeMismatch, "expects a date at midnight UTC, got "+afternoon.String())

	_, err = mapping.Unlower(clock, "25:00:00")
	assertCode(t, err, mapping.CodeTypeMismatch, "expects a time of day, got '25:00:00'")
}

func TestDuration(t *testing.T) {
	m := build[time.Duration](t, options.CategoryNativeDate)

	assert.Equal(t, "1h30m0s", roundTrip(t, m, 90*time.Minute))
	assert.Equal(t, "1.5s", roundTrip(t, m, 1500*time.Millisecond))

	_, err := mapping.Unlower(m, "soon")
	assertCode(t, err, mapping.CodeTypeMismatch, "expects a duration, got 'soon'")

	_, err = mapping.Build(shape.DateTimeOf(reflect.TypeFor[int64](), shape.DateDuration), 0)
	assertCode(t, err, mapping.CodeUnsupportedType, "cannot find a mapping for type Duration")
}
