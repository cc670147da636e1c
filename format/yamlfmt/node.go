package yamlfmt

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"ags/structural"
)

const (
	nullTag      = "!!null"
	boolTag      = "!!bool"
	intTag       = "!!int"
	floatTag     = "!!float"
	strTag       = "!!str"
	timestampTag = "!!timestamp"
	mergeTag     = "!!merge"
)

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// encode builds the node tree of a structural value.
func encode(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case nil:
		return scalar(nullTag, "null"), nil
	case bool:
		return scalar(boolTag, strconv.FormatBool(v)), nil
	case int64:
		return scalar(intTag, strconv.FormatInt(v, 10)), nil
	case float64:
		return scalar(floatTag, formatFloat(v)), nil
	case string:
		return scalar(strTag, v), nil
	case time.Time:
		return scalar(timestampTag, formatTime(v)), nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			child, err := encode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case *structural.Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for pair := v.Oldest(); pair != nil; pair = pair.Next() {
			child, err := encode(pair.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalar(strTag, pair.Key), child)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotStructural, v)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		return structural.FormatFloat(f)
	}
}

// formatTime writes midnight UTC as a bare date, which reads back as the same
// instant.
func formatTime(t time.Time) string {
	if t.Location() == time.UTC {
		if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
			return t.Format(time.DateOnly)
		}
	}

	return t.Format(time.RFC3339Nano)
}

// decode converts a node tree to a structural value, following aliases.
func decode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decode(node.Content[0])
	case yaml.AliasNode:
		return decode(node.Alias)
	case yaml.ScalarNode:
		return decodeScalar(node)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := decode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.MappingNode:
		m := structural.NewMap(len(node.Content) / 2)
		if err := decodeEntries(m, node); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("line %d: unexpected node kind %d", node.Line, node.Kind)
	}
}

func decodeScalar(node *yaml.Node) (any, error) {
	var out any

	switch tag := node.ShortTag(); tag {
	case nullTag:
		return nil, nil
	case strTag:
		return node.Value, nil
	case boolTag:
		out = new(bool)
	case intTag:
		out = new(int64)
	case floatTag:
		out = new(float64)
	case timestampTag:
		out = new(time.Time)
	default:
		return nil, fmt.Errorf("%w %s at line %d", ErrTag, tag, node.Line)
	}

	if err := node.Decode(out); err != nil {
		return nil, fmt.Errorf("line %d: %w", node.Line, err)
	}

	return reflect.ValueOf(out).Elem().Interface(), nil
}

// decodeEntries adds the entries of a mapping node to m. Merge keys add the
// entries of the merged mappings that m does not define itself.
func decodeEntries(m *structural.Map, node *yaml.Node) error {
	var merged []*yaml.Node

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if key.ShortTag() == mergeTag {
			merged = append(merged, value)
			continue
		}
		if key.Kind != yaml.ScalarNode || key.ShortTag() != strTag {
			return fmt.Errorf("%w: %s at line %d", ErrKey, key.Value, key.Line)
		}

		v, err := decode(value)
		if err != nil {
			return err
		}
		m.Set(key.Value, v)
	}

	for _, value := range merged {
		if err := merge(m, value); err != nil {
			return err
		}
	}

	return nil
}

func merge(m *structural.Map, node *yaml.Node) error {
	for node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		inner := structural.NewMap(len(node.Content) / 2)
		if err := decodeEntries(inner, node); err != nil {
			return err
		}
		for pair := inner.Oldest(); pair != nil; pair = pair.Next() {
			if _, ok := m.Get(pair.Key); !ok {
				m.Set(pair.Key, pair.Value)
			}
		}
		return nil
	case yaml.SequenceNode:
		for _, child := range node.Content {
			if err := merge(m, child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: merge value is not a mapping", node.Line)
	}
}
