package boxed

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML document and boxes it with FromNative.
// Mappings become Maps, null becomes None, integers become Int64, strings
// Str and booleans Bool; sequences and floats are carried as Host values.
func DecodeYAML(data []byte) (Value, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return FromNative(doc)
}

// UnmarshalYAML decodes a YAML mapping into m.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	var doc any
	if err := node.Decode(&doc); err != nil {
		return err
	}
	if doc == nil {
		*m = EmptyMap()
		return nil
	}
	v, err := FromNative(doc)
	if err != nil {
		return err
	}
	mm, ok := v.(Map)
	if !ok {
		return Mismatch("decode", KindMap, v.Kind())
	}
	*m = mm
	return nil
}

func (i Int32) MarshalYAML() (any, error) { return int32(i), nil }
func (i Int64) MarshalYAML() (any, error) { return int64(i), nil }
func (b Bool) MarshalYAML() (any, error)  { return bool(b), nil }
func (s Str) MarshalYAML() (any, error)   { return string(s), nil }
func (u UUID) MarshalYAML() (any, error)  { return uuid.UUID(u).String(), nil }
func (h Host) MarshalYAML() (any, error)  { return h.Unbox() }

// MarshalYAML encodes None as null and Some(v) as v.
func (o Option) MarshalYAML() (any, error) {
	if o.IsNone() {
		return nil, nil
	}
	return o.value, nil
}

// MarshalYAML encodes a Choice as the sequence of its candidates.
func (c Choice) MarshalYAML() (any, error) {
	return c.candidates, nil
}

// MarshalYAML encodes the map as a mapping with keys sorted by their
// String form, so the output is stable.
func (m Map) MarshalYAML() (any, error) {
	items := m.Items()
	slices.SortFunc(items, func(a, b Pair) int {
		return strings.Compare(a.Key.String(), b.Key.String())
	})

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, p := range items {
		var kn, vn yaml.Node
		if err := kn.Encode(p.Key); err != nil {
			return nil, err
		}
		if err := vn.Encode(p.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}
