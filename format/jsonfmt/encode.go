package jsonfmt

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"ags/structural"
)

type encoder struct {
	buf    *bytes.Buffer
	indent int
}

func (e *encoder) value(v any, depth int) error {
	switch v := v.(type) {
	case nil:
		e.buf.WriteString("null")
	case bool:
		e.buf.WriteString(strconv.FormatBool(v))
	case int64:
		e.buf.WriteString(strconv.FormatInt(v, 10))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrNonFinite, v)
		}
		e.buf.WriteString(structural.FormatFloat(v))
	case string:
		return e.string(v)
	case time.Time:
		return e.string(v.Format(time.RFC3339Nano))
	case []any:
		return e.list(v, depth)
	case *structural.Map:
		return e.object(v, depth)
	default:
		return fmt.Errorf("%w: %T", ErrNotStructural, v)
	}

	return nil
}

func (e *encoder) string(s string) error {
	quoted, err := json.MarshalNoEscape(s)
	if err != nil {
		return err
	}

	e.buf.Write(quoted)
	return nil
}

func (e *encoder) list(items []any, depth int) error {
	if len(items) == 0 {
		e.buf.WriteString("[]")
		return nil
	}

	e.buf.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline(depth + 1)
		if err := e.value(item, depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.buf.WriteByte(']')

	return nil
}

func (e *encoder) object(m *structural.Map, depth int) error {
	if m.Len() == 0 {
		e.buf.WriteString("{}")
		return nil
	}

	e.buf.WriteByte('{')
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if pair != m.Oldest() {
			e.buf.WriteByte(',')
		}
		e.newline(depth + 1)
		if err := e.string(pair.Key); err != nil {
			return err
		}
		e.buf.WriteByte(':')
		if e.indent > 0 {
			e.buf.WriteByte(' ')
		}
		if err := e.value(pair.Value, depth+1); err != nil {
			return err
		}
	}
	e.newline(depth)
	e.buf.WriteByte('}')

	return nil
}

func (e *encoder) newline(depth int) {
	if e.indent <= 0 {
		return
	}

	e.buf.WriteByte('\n')
	for range depth * e.indent {
		e.buf.WriteByte(' ')
	}
}
