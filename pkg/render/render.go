// Package render turns flattened attribute paths into HTML head tags.
package render

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/quintype/quintype-seo-go/pkg/attrs"
)

// Keys whose namespace is one of these are Open Graph style properties and
// are written with property= instead of name=.
var propertyNamespaces = map[string]struct{}{
	"og":      {},
	"fb":      {},
	"article": {},
}

const (
	KeyAlternate = "alternate"
	KeyCanonical = "canonical"
	KeyTitle     = "title"
)

// Escaper transforms a value before it is written into a tag.
type Escaper func(string) string

// Renderer writes tags. The zero value writes values verbatim.
type Renderer struct {
	escape Escaper
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithEscaper applies fn to every value and link attribute written.
func WithEscaper(fn Escaper) Option {
	return func(r *Renderer) {
		r.escape = fn
	}
}

// New returns a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SanitizeEscaper strips markup from values and escapes what is left using
// bluemonday's strict policy. Use it when values may come from outside the
// publishing system.
func SanitizeEscaper() Escaper {
	policy := bluemonday.StrictPolicy()
	return policy.Sanitize
}

// IsProperty reports whether key belongs to a property namespace.
func IsProperty(key string) bool {
	ns, _, _ := strings.Cut(key, attrs.Separator)
	_, ok := propertyNamespaces[ns]
	return ok
}

// Render emits one tag per flat entry, or one per link for alternate
// entries, in the order of flat. A nil Renderer renders verbatim.
func (r *Renderer) Render(flat attrs.Flat) []string {
	tags := make([]string, 0, len(flat))
	for _, e := range flat {
		switch {
		case IsProperty(e.Key):
			tags = append(tags, `<meta content= "`+r.value(e.Value)+`" property= "`+e.Key+`">`)
		case e.Key == KeyAlternate:
			tags = append(tags, r.alternates(e.Value)...)
		case e.Key == KeyCanonical:
			tags = append(tags, `<link rel="canonical" href="`+r.value(e.Value)+`" />`)
		case e.Key == KeyTitle:
			tags = append(tags, `<title>`+r.value(e.Value)+`</title>`)
		default:
			tags = append(tags, `<meta content= "`+r.value(e.Value)+`" name= "`+e.Key+`">`)
		}
	}
	return tags
}

func (r *Renderer) alternates(v any) []string {
	var links []*attrs.Tree
	switch x := v.(type) {
	case []any:
		for _, item := range x {
			if t, ok := item.(*attrs.Tree); ok {
				links = append(links, t)
			}
		}
	case *attrs.Tree:
		links = append(links, x)
	}

	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, `<link href="`+r.value(l.Get("href"))+
			`" rel="alternate" title="`+r.value(l.Get("title"))+
			`" type="`+r.value(l.Get("type"))+`" />`)
	}
	return out
}

func (r *Renderer) value(v any) string {
	s := attrs.Format(v)
	if r != nil && r.escape != nil {
		return r.escape(s)
	}
	return s
}
