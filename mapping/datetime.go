package mapping

import (
	"reflect"
	"time"

	"ags/options"
	"ags/shape"
	"ags/structural"
)

const clockLayout = "15:04:05.999999999"

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

type dateTimeMapping struct {
	t *shape.DateTime
	// native passes time.Time through as a structural value.
	native bool
}

func (b *builder) dateTime(t *shape.DateTime, path Path) (Mapping, error) {
	want := timeType
	if t.Kind == shape.DateDuration {
		want = durationType
	}
	if t.Go != want {
		return nil, unsupported(path, t)
	}

	native := b.opts.Has(options.CategoryNativeDate) && (t.Kind == shape.DateTimestamp || t.Kind == shape.DateDate)

	return &dateTimeMapping{t: t, native: native}, nil
}

func (m *dateTimeMapping) Type() shape.Type { return m.t }

func (m *dateTimeMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv, err := checkType(rv, m.t.Go, path)
	if err != nil {
		return nil, err
	}

	if m.t.Kind == shape.DateDuration {
		return time.Duration(rv.Int()).String(), nil
	}

	tm := rv.Interface().(time.Time)
	if err := m.canonical(tm, path); err != nil {
		return nil, err
	}

	switch {
	case m.native:
		return tm, nil
	case m.t.Kind == shape.DateDate:
		return tm.Format(time.DateOnly), nil
	case m.t.Kind == shape.DateClock:
		return tm.Format(clockLayout), nil
	default:
		return tm.Format(time.RFC3339Nano), nil
	}
}

// canonical rejects dates that are not midnight UTC and clock times that are not
// on 0000-01-01 UTC, since their text forms could not restore them.
func (m *dateTimeMapping) canonical(tm time.Time, path Path) error {
	switch m.t.Kind {
	case shape.DateDate:
		if tm.Location() != time.UTC || !tm.Equal(midnight(tm)) {
			return mismatch(path, "a date at midnight UTC", shape.Repr(tm))
		}
	case shape.DateClock:
		if y, mo, d := tm.Date(); tm.Location() != time.UTC || y != 0 || mo != time.January || d != 1 {
			return mismatch(path, "a time of day on 0000-01-01 UTC", shape.Repr(tm))
		}
	}

	return nil
}

func (m *dateTimeMapping) Unlower(s any, path Path) (reflect.Value, error) {
	if tm, ok := s.(time.Time); ok && m.native {
		if err := m.canonical(tm, path); err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(tm), nil
	}

	text, ok := s.(string)
	if !ok {
		expect := "str"
		if m.native {
			expect = "timestamp or str"
		}
		return reflect.Value{}, mismatch(path, expect, structural.Describe(s))
	}

	switch m.t.Kind {
	case shape.DateDuration:
		d, err := time.ParseDuration(text)
		if err != nil {
			return reflect.Value{}, mismatch(path, "a duration", shape.Repr(text))
		}
		return reflect.ValueOf(d), nil
	case shape.DateDate:
		return m.parse([]string{time.DateOnly}, "a date", text, path)
	case shape.DateClock:
		return m.parse([]string{clockLayout}, "a time of day", text, path)
	default:
		return m.parse(timestampLayouts, "an ISO 8601 timestamp", text, path)
	}
}

// timestampLayouts are tried in order. Timestamps without an offset are UTC.
var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"}

func (m *dateTimeMapping) parse(layouts []string, expect, text string, path Path) (reflect.Value, error) {
	for _, layout := range layouts {
		if tm, err := time.Parse(layout, text); err == nil {
			return reflect.ValueOf(tm), nil
		}
	}

	return reflect.Value{}, mismatch(path, expect, shape.Repr(text))
}

func midnight(tm time.Time) time.Time {
	y, mo, d := tm.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}
