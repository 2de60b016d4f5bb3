package seo

import (
	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/attrs"
)

// CardShare is the share page of one card of a story. It is the story page
// with the og and twitter blocks taken from the card's social share
// settings. An empty card renders exactly like the story.
type CardShare struct {
	story *Story
	card  *models.Card
}

// NewCardShare returns the share page of card in story. A nil card is empty.
func NewCardShare(cfg *models.Config, story *models.Story, card *models.Card) *CardShare {
	return &CardShare{story: NewStory(cfg, story), card: card}
}

// Metadata resolves the story's record.
func (c *CardShare) Metadata() *attrs.Tree { return c.story.Metadata() }

// BuildTree implements Page.
func (c *CardShare) BuildTree(metadata *attrs.Tree) *attrs.Tree {
	return c.story.tree(metadata, c.OpenGraph(), c.Twitter())
}

// MetaTags implements Page.
func (c *CardShare) MetaTags() []string { return Tags(c, nil) }

// OpenGraph returns the story og block with the card's title, message and
// image over it, pointing at the card URL.
func (c *CardShare) OpenGraph() *attrs.Tree {
	og := c.story.OpenGraph()
	if c.card.IsEmpty() {
		return og
	}
	share := c.card.Metadata.SocialShare
	story := c.story.story

	over := attrs.Of(
		"title", firstNonEmpty(share.Title, story.Headline),
		"description", firstNonEmpty(share.Message, story.Summary),
	)
	if img := share.Image; img != nil && img.Key != "" {
		og = og.Without("image:width", "image:height")
		over.Set("image", imageURL(c.story.config.CDNName, img.Key))
		if img.Metadata != nil {
			over.Set("image:width", img.Metadata.Width)
			over.Set("image:height", img.Metadata.Height)
		}
	}
	over.Set("url", c.story.URL()+"/card/"+c.card.ID)
	return attrs.Merge(og, over)
}

// Twitter returns the story twitter block with the card's title, message and
// image over it.
func (c *CardShare) Twitter() *attrs.Tree {
	tw := c.story.Twitter()
	if c.card.IsEmpty() {
		return tw
	}
	share := c.card.Metadata.SocialShare
	story := c.story.story

	over := attrs.Of(
		"title", firstNonEmpty(share.Title, story.Headline),
		"description", firstNonEmpty(share.Message, story.Summary),
	)
	if img := share.Image; img != nil && img.Key != "" {
		over.Set("image", attrs.Of("src", imageURL(c.story.config.CDNName, img.Key)))
	}
	return attrs.Merge(tw, over)
}
