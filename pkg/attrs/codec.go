package attrs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// ErrNotObject is returned when a document's root is not a mapping.
var ErrNotObject = errors.New("attrs: document root is not an object")

// ParseJSON decodes a JSON object into a tree, keeping the document's key
// order. A null document yields an empty tree.
func ParseJSON(data []byte) (*Tree, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("attrs: invalid JSON")
	}
	res := gjson.ParseBytes(data)
	if res.Type == gjson.Null {
		return New(), nil
	}
	if !res.IsObject() {
		return nil, ErrNotObject
	}

	entries := orderedmap.New[string, entry]()
	if err := entries.UnmarshalJSON([]byte(res.Raw)); err != nil {
		return nil, fmt.Errorf("attrs: decode JSON: %w", err)
	}
	return fromEntries(entries), nil
}

// entry decodes one value of an ordered document. Objects become *Tree so
// nested key order survives; the ordered map alone would decode them into
// plain Go maps.
type entry struct {
	v any
}

func fromEntries(entries *orderedmap.OrderedMap[string, entry]) *Tree {
	t := New()
	for pair := entries.Oldest(); pair != nil; pair = pair.Next() {
		t.Set(pair.Key, pair.Value.v)
	}
	return t
}

func entryValues(items []entry) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item.v
	}
	return out
}

func (e *entry) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	switch {
	case res.IsObject():
		t, err := ParseJSON(data)
		if err != nil {
			return err
		}
		e.v = t
		return nil
	case res.IsArray():
		items := res.Array()
		out := make([]any, len(items))
		for i, item := range items {
			var child entry
			if err := child.UnmarshalJSON([]byte(item.Raw)); err != nil {
				return err
			}
			out[i] = child.v
		}
		e.v = out
		return nil
	}

	switch res.Type {
	case gjson.True:
		e.v = true
	case gjson.False:
		e.v = false
	case gjson.Number:
		if strings.ContainsAny(res.Raw, ".eE") {
			e.v = res.Num
		} else {
			e.v = res.Int()
		}
	case gjson.String:
		e.v = res.Str
	default:
		e.v = nil
	}
	return nil
}

func (e *entry) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return e.UnmarshalYAML(n.Alias)
	}
	switch n.Kind {
	case yaml.MappingNode:
		t := New()
		if err := t.UnmarshalYAML(n); err != nil {
			return err
		}
		e.v = t
	case yaml.SequenceNode:
		var items []entry
		if err := n.Decode(&items); err != nil {
			return err
		}
		e.v = entryValues(items)
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("attrs: decode line %d: %w", n.Line, err)
		}
		e.v = normalize(v)
	}
	return nil
}

// MarshalJSON writes the tree as a JSON object in key order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	if t.m == nil {
		return []byte("{}"), nil
	}
	return t.m.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler with ordered keys.
func (t *Tree) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler with ordered keys.
func (t *Tree) UnmarshalYAML(n *yaml.Node) error {
	for n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		*t = *New()
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w (line %d)", ErrNotObject, n.Line)
	}

	entries := orderedmap.New[string, entry]()
	if err := entries.UnmarshalYAML(n); err != nil {
		return err
	}
	*t = *fromEntries(entries)
	return nil
}

// MarshalYAML emits an ordered mapping node.
func (t *Tree) MarshalYAML() (any, error) {
	if t.Len() == 0 {
		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}, nil
	}
	return t.m.MarshalYAML()
}
