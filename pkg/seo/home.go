package seo

import (
	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/attrs"
)

// Home is the site front page.
type Home struct {
	base
}

// NewHome returns the front page.
func NewHome(cfg *models.Config) *Home {
	return &Home{base: newBase(cfg, models.PageHome, models.NoOwner)}
}

// BuildTree implements Page. The record's title and description feed the
// social blocks; the site also advertises its ATOM feed.
func (h *Home) BuildTree(metadata *attrs.Tree) *attrs.Tree {
	title := pageTitle(metadata, h.config.Title)
	social := func() *attrs.Tree {
		return attrs.Of(
			"title", metadata.Get("title"),
			"description", metadata.Get("description"),
		)
	}

	return overMetadata(metadata, attrs.Of(
		"title", title,
		"description", metadata.Get("description"),
		"og", social(),
		"twitter", social(),
		"msvalidate.01", optional(h.config.Integrations.Bing.AppID),
		"fb", attrs.Of("app_id", optional(h.config.Facebook.AppID)),
		"alternate", []any{attrs.Of(
			"href", "/feed",
			"type", "application/atom+xml",
			"title", attrs.Format(title)+" ATOM Feed",
		)},
	))
}

// MetaTags implements Page.
func (h *Home) MetaTags() []string { return Tags(h, nil) }
