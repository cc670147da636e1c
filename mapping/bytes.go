package mapping

import (
	"reflect"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"

	"ags/internal/base85"
	"ags/shape"
	"ags/structural"
	"ags/utils"
)

const utf8Tag = "utf8"

type bytesMapping struct {
	t *shape.Bytes
}

func (b *builder) bytes(t *shape.Bytes, path Path) (Mapping, error) {
	if t.Go == nil || t.Go.Kind() != reflect.Slice || t.Go.Elem().Kind() != reflect.Uint8 {
		return nil, unsupported(path, t)
	}

	return &bytesMapping{t: t}, nil
}

func (m *bytesMapping) Type() shape.Type { return m.t }

// Lower writes UTF-8 content as "utf8:<text>" and anything else as base85.
func (m *bytesMapping) Lower(rv reflect.Value, path Path) (any, error) {
	rv, err := checkType(rv, m.t.Go, path)
	if err != nil {
		return nil, err
	}

	raw := rv.Bytes()
	if utf8.Valid(raw) {
		return utf8Tag + ":" + string(raw), nil
	}

	return base85.Encode(raw), nil
}

// Unlower reads "<encoding>:<text>" by encoding the text with the named IANA
// encoding, and untagged text as base85.
func (m *bytesMapping) Unlower(s any, path Path) (reflect.Value, error) {
	text, ok := s.(string)
	if !ok {
		return reflect.Value{}, mismatch(path, "str", structural.Describe(s))
	}

	if strings.Contains(text, ":") {
		tag, payload := utils.Unpack2(strings.SplitN(text, ":", 2))
		raw, err := encodeText(tag, payload)
		if err != nil {
			return reflect.Value{}, err.withPath(path)
		}
		return reflect.ValueOf(raw).Convert(m.t.Go), nil
	}

	raw, err := base85.Decode(text)
	if err != nil {
		return reflect.Value{}, mismatch(path, "base85 text", shape.Repr(text))
	}

	return reflect.ValueOf(raw).Convert(m.t.Go), nil
}

func encodeText(tag, payload string) ([]byte, *Error) {
	if tag == utf8Tag {
		return []byte(payload), nil
	}

	enc, err := ianaindex.IANA.Encoding(tag)
	if err != nil || enc == nil {
		return nil, mismatch("", "a known text encoding", shape.Repr(tag))
	}

	raw, err := enc.NewEncoder().Bytes([]byte(payload))
	if err != nil {
		return nil, mismatch("", "text representable in "+tag, shape.Repr(payload))
	}

	return raw, nil
}
