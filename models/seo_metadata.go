package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/quintype/quintype-seo-go/pkg/attrs"
	"gopkg.in/yaml.v3"
)

// PageType selects the SEO metadata bucket and the tag rules for a page.
type PageType string

const (
	PageHome         PageType = "home"
	PageSection      PageType = "section"
	PageSearch       PageType = "search"
	PageStaticPage   PageType = "static-page"
	PageStory        PageType = "story"
	PageStoryElement PageType = "story-element"
	PageTag          PageType = "tag"
)

// SEOMetadataRecord overrides computed attributes for one page instance, or
// for a singleton page type when OwnerID is not set.
type SEOMetadataRecord struct {
	OwnerType PageType    `yaml:"owner-type" json:"owner-type"`
	OwnerID   OwnerID     `yaml:"owner-id" json:"owner-id"`
	Data      *attrs.Tree `yaml:"data" json:"data"`
}

// OwnerID identifies the page instance a record belongs to. Numeric ids are
// kept in their shortest decimal form, so 42, 42.0 and 4.2e1 are the same id. The zero value means "no owner".
type OwnerID struct {
	Value string
	Valid bool
}

// NoOwner is the owner of singleton pages such as home and search.
var NoOwner = OwnerID{}

// OwnerIDFrom returns a set owner id.
func OwnerIDFrom(s string) OwnerID {
	return OwnerID{Value: s, Valid: true}
}

// NumericOwnerID returns the owner id for numeric content ids.
func NumericOwnerID(n int64) OwnerID {
	return OwnerIDFrom(strconv.FormatInt(n, 10))
}

// Equal reports whether both ids are unset, or both set to the same value.
func (o OwnerID) Equal(other OwnerID) bool {
	if o.Valid != other.Valid {
		return false
	}
	return !o.Valid || o.Value == other.Value
}

func (o OwnerID) String() string {
	if !o.Valid {
		return "<none>"
	}
	return o.Value
}

// UnmarshalYAML accepts null, strings and numbers.
func (o *OwnerID) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("owner-id: line %d: expected scalar", n.Line)
	}
	switch n.Tag {
	case "!!null":
		*o = NoOwner
		return nil
	case "!!int", "!!float":
		var v any
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("owner-id: line %d: %w", n.Line, err)
		}
		*o = OwnerIDFrom(attrs.Format(v))
		return nil
	}
	*o = OwnerIDFrom(n.Value)
	return nil
}

// MarshalYAML writes null for unset ids.
func (o OwnerID) MarshalYAML() (any, error) {
	if !o.Valid {
		return nil, nil
	}
	return o.Value, nil
}

// UnmarshalJSON accepts null, strings and numbers.
func (o *OwnerID) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("owner-id: %w", err)
	}
	switch v := raw.(type) {
	case nil:
		*o = NoOwner
	case string:
		*o = OwnerIDFrom(v)
	case json.Number:
		id, err := numericOwnerID(v)
		if err != nil {
			return err
		}
		*o = id
	default:
		return fmt.Errorf("owner-id: unsupported value %s", data)
	}
	return nil
}

// MarshalJSON writes null for unset ids.
func (o OwnerID) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func numericOwnerID(n json.Number) (OwnerID, error) {
	if i, err := n.Int64(); err == nil {
		return NumericOwnerID(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return NoOwner, fmt.Errorf("owner-id: %w", err)
	}
	return OwnerIDFrom(attrs.Format(f)), nil
}
