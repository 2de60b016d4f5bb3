package seo

import (
	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/attrs"
)

// Search is a search results page. Only its title is emitted.
type Search struct {
	base
	term string
}

// NewSearch returns the results page for term.
func NewSearch(cfg *models.Config, term string) *Search {
	return &Search{base: newBase(cfg, models.PageSearch, models.NoOwner), term: term}
}

// BuildTree implements Page.
func (s *Search) BuildTree(metadata *attrs.Tree) *attrs.Tree {
	return attrs.Of("title", pageTitle(metadata, s.term+" - Search Results"))
}

// MetaTags implements Page.
func (s *Search) MetaTags() []string { return Tags(s, nil) }

// StaticPage is a fixed page (about us, privacy) with a caller-chosen title.
type StaticPage struct {
	base
	name  string
	title string
}

// NewStaticPage returns the static page name, titled title.
func NewStaticPage(cfg *models.Config, name, title string) *StaticPage {
	return &StaticPage{
		base:  newBase(cfg, models.PageStaticPage, models.OwnerIDFrom(name)),
		name:  name,
		title: title,
	}
}

// BuildTree implements Page.
func (p *StaticPage) BuildTree(metadata *attrs.Tree) *attrs.Tree {
	return attrs.Of("title", pageTitle(metadata, p.title))
}

// MetaTags implements Page.
func (p *StaticPage) MetaTags() []string { return Tags(p, nil) }

// Tag lists the stories carrying one tag.
type Tag struct {
	base
	name string
}

// NewTag returns the page listing stories tagged name.
func NewTag(cfg *models.Config, name string) *Tag {
	return &Tag{base: newBase(cfg, models.PageTag, models.OwnerIDFrom(name)), name: name}
}

// BuildTree implements Page.
func (t *Tag) BuildTree(metadata *attrs.Tree) *attrs.Tree {
	return attrs.Of("title", pageTitle(metadata, t.name+" - "+t.config.Title))
}

// MetaTags implements Page.
func (t *Tag) MetaTags() []string { return Tags(t, nil) }
