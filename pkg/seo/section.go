package seo

import (
	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/attrs"
)

// Section is a section landing page.
type Section struct {
	base
	section models.Section
}

// NewSection returns the page of section, matched to records by section id.
func NewSection(cfg *models.Config, section models.Section) *Section {
	return &Section{
		base:    newBase(cfg, models.PageSection, models.NumericOwnerID(section.ID)),
		section: section,
	}
}

// BuildTree implements Page.
func (s *Section) BuildTree(metadata *attrs.Tree) *attrs.Tree {
	social := func() *attrs.Tree {
		return attrs.Of(
			"title", metadata.Get("title"),
			"description", metadata.Get("description"),
		)
	}
	return overMetadata(metadata, attrs.Of(
		"title", pageTitle(metadata, s.hyphenatedTitle()),
		"description", metadata.Get("description"),
		"og", social(),
		"twitter", social(),
	))
}

// MetaTags implements Page.
func (s *Section) MetaTags() []string { return Tags(s, nil) }

func (s *Section) hyphenatedTitle() string {
	return firstNonEmpty(s.section.DisplayName, s.section.Name) + " - " + s.config.Title
}

// SectionCollection is a section page rendered from its collection. It
// shares the section's metadata record and adds the cover image to the
// social blocks.
type SectionCollection struct {
	base
	collection models.Collection
}

// NewSectionCollection returns the section page backed by collection.
func NewSectionCollection(cfg *models.Config, collection models.Collection) *SectionCollection {
	return &SectionCollection{
		base:       newBase(cfg, models.PageSection, collection.SectionOwner()),
		collection: collection,
	}
}

// BuildTree implements Page.
func (c *SectionCollection) BuildTree(metadata *attrs.Tree) *attrs.Tree {
	title := pageTitle(metadata, c.hyphenatedTitle())
	description := firstTruthy(metadata.Get("description"), "")
	socialTitle := firstTruthy(metadata.Get("title"), title)
	image := c.coverImageURL()

	og := attrs.Of(
		"title", socialTitle,
		"description", description,
		"image", image,
	)
	if cover := c.collection.Metadata.CoverImage; cover != nil && cover.Metadata != nil {
		og.Set("image:width", cover.Metadata.Width)
		og.Set("image:height", cover.Metadata.Height)
	}

	return overMetadata(metadata, attrs.Of(
		"title", title,
		"description", description,
		"og", og,
		"twitter", attrs.Of(
			"title", socialTitle,
			"description", description,
			"image", attrs.Of("src", image),
		),
	))
}

// MetaTags implements Page.
func (c *SectionCollection) MetaTags() []string { return Tags(c, nil) }

func (c *SectionCollection) hyphenatedTitle() string {
	if c.config.Title != "" {
		return c.collection.Name + " - " + c.config.Title
	}
	return c.collection.Name
}

// coverImageURL is empty when the collection has no cover image.
func (c *SectionCollection) coverImageURL() string {
	cover := c.collection.Metadata.CoverImage
	if cover == nil {
		return ""
	}
	return imageURL(c.config.CDNName, cover.S3Key)
}
