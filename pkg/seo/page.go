// Package seo builds the meta, link and title tags of each page type from
// the site configuration, the page's content object and any SEO metadata
// record configured for that page.
package seo

import (
	"strings"

	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/attrs"
	"github.com/quintype/quintype-seo-go/pkg/render"
)

// keyPageTitle in a metadata record replaces the computed <title>. It is
// never written out under its own name.
const keyPageTitle = "page-title"

// Page is implemented by every page model.
type Page interface {
	// Metadata returns the SEO metadata record data matching this page, or an
	// empty tree.
	Metadata() *attrs.Tree
	// BuildTree merges computed attributes over metadata.
	BuildTree(metadata *attrs.Tree) *attrs.Tree
	// MetaTags renders the page's tags verbatim.
	MetaTags() []string
}

var (
	_ Page = (*Home)(nil)
	_ Page = (*Section)(nil)
	_ Page = (*SectionCollection)(nil)
	_ Page = (*Search)(nil)
	_ Page = (*StaticPage)(nil)
	_ Page = (*Story)(nil)
	_ Page = (*CardShare)(nil)
	_ Page = (*StoryElement)(nil)
	_ Page = (*Tag)(nil)
)

// Tree resolves the page's metadata and returns its attribute tree.
func Tree(p Page) *attrs.Tree {
	return p.BuildTree(p.Metadata())
}

// Tags resolves, builds, flattens and renders p. Overrides replace flat
// entries with the same key or are appended. A nil renderer writes values
// verbatim.
func Tags(p Page, r *render.Renderer, overrides ...attrs.Entry) []string {
	flat := attrs.Flatten(Tree(p))
	if len(overrides) > 0 {
		flat = flat.With(overrides...)
	}
	return r.Render(flat)
}

// base carries what every page needs to find its metadata record.
type base struct {
	config   *models.Config
	pageType models.PageType
	owner    models.OwnerID
}

func newBase(cfg *models.Config, pageType models.PageType, owner models.OwnerID) base {
	if cfg == nil {
		cfg = &models.Config{}
	}
	return base{config: cfg, pageType: pageType, owner: owner}
}

// Metadata implements Page.
func (b base) Metadata() *attrs.Tree {
	return ResolveMetadata(b.config.SEOMetadata, b.pageType, b.owner)
}

// pageTitle returns the record's page-title when set, else fallback.
func pageTitle(metadata *attrs.Tree, fallback string) any {
	if v, ok := metadata.Lookup(keyPageTitle); ok && v != nil {
		return v
	}
	return fallback
}

// overMetadata merges computed attributes over metadata minus page-title.
func overMetadata(metadata, computed *attrs.Tree) *attrs.Tree {
	return attrs.Merge(metadata.Without(keyPageTitle), computed)
}

// imageURL joins the CDN base and an image key, encoding spaces.
func imageURL(cdn, key string) string {
	return strings.ReplaceAll(cdn+key, " ", "%20")
}

// optional maps unset configuration strings to nil so they are left out.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// truthy follows the loose truth rules of the content API payloads.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}

func firstTruthy(v any, fallback any) any {
	if truthy(v) {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
