package jsonfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"ags/structural"
)

func decode(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalid
	}

	return value(gjson.ParseBytes(data))
}

// value converts a parsed JSON value. Numbers without a fraction or exponent
// become int64, the rest float64.
func value(r gjson.Result) (any, error) {
	switch r.Type {
	case gjson.Null:
		return nil, nil
	case gjson.False:
		return false, nil
	case gjson.True:
		return true, nil
	case gjson.String:
		return r.Str, nil
	case gjson.Number:
		return number(r.Raw)
	}

	switch {
	case r.IsArray():
		return list(r)
	case r.IsObject():
		return object(r)
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrInvalid, r.Raw)
	}
}

func number(raw string) (any, error) {
	if !strings.ContainsAny(raw, ".eE") {
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: integer %s does not fit in 64 bits", ErrInvalid, raw)
		}
		return i, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %s: %w", ErrInvalid, raw, err)
	}

	return f, nil
}

func list(r gjson.Result) (any, error) {
	items := []any{}

	var err error
	r.ForEach(func(_, item gjson.Result) bool {
		var v any
		if v, err = value(item); err != nil {
			return false
		}
		items = append(items, v)
		return true
	})

	return items, err
}

func object(r gjson.Result) (any, error) {
	m := structural.NewMap(0)

	var err error
	r.ForEach(func(key, item gjson.Result) bool {
		var v any
		if v, err = value(item); err != nil {
			return false
		}
		m.Set(key.Str, v)
		return true
	})

	return m, err
}
