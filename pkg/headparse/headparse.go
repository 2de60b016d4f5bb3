// Package headparse reads rendered head tags back into structured records.
package headparse

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Tag is one parsed head element.
type Tag struct {
	Element   string `json:"element" yaml:"element"`                         // meta, link or title
	Attribute string `json:"attribute,omitempty" yaml:"attribute,omitempty"` // property or name, for meta
	Key       string `json:"key,omitempty" yaml:"key,omitempty"`
	Value     string `json:"value,omitempty" yaml:"value,omitempty"`
	Rel       string `json:"rel,omitempty" yaml:"rel,omitempty"`
	Href      string `json:"href,omitempty" yaml:"href,omitempty"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Parse parses rendered tag strings in document order. Elements other than
// meta, link and title are ignored.
func Parse(tags []string) ([]Tag, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<html><head>" + strings.Join(tags, "\n") + "</head><body></body></html>"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse tags: %w", err)
	}

	var out []Tag
	doc.Find("head").Children().Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "meta":
			t := Tag{Element: "meta", Value: s.AttrOr("content", "")}
			if p, ok := s.Attr("property"); ok {
				t.Attribute, t.Key = "property", p
			} else {
				t.Attribute, t.Key = "name", s.AttrOr("name", "")
			}
			out = append(out, t)
		case "link":
			href := s.AttrOr("href", "")
			out = append(out, Tag{
				Element: "link",
				Key:     s.AttrOr("rel", ""),
				Value:   href,
				Rel:     s.AttrOr("rel", ""),
				Href:    href,
				Title:   s.AttrOr("title", ""),
				Type:    s.AttrOr("type", ""),
			})
		case "title":
			out = append(out, Tag{Element: "title", Key: "title", Value: s.Text()})
		}
	})
	return out, nil
}

// Find returns the first tag with the given key: the meta property or name,
// the link rel, or "title".
func Find(tags []Tag, key string) (Tag, bool) {
	for _, t := range tags {
		if t.Key == key {
			return t, true
		}
	}
	return Tag{}, false
}

// FindAll returns every tag with the given key.
func FindAll(tags []Tag, key string) []Tag {
	var out []Tag
	for _, t := range tags {
		if t.Key == key {
			out = append(out, t)
		}
	}
	return out
}
