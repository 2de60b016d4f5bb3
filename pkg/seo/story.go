package seo

import (
	"strings"

	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/attrs"
)

// Story is a story page.
type Story struct {
	base
	story *models.Story
}

// NewStory returns the page of story. A nil story renders as empty.
func NewStory(cfg *models.Config, story *models.Story) *Story {
	if story == nil {
		story = &models.Story{}
	}
	return &Story{base: newBase(cfg, models.PageStory, models.NoOwner), story: story}
}

// BuildTree implements Page.
func (s *Story) BuildTree(metadata *attrs.Tree) *attrs.Tree {
	return s.tree(metadata, s.OpenGraph(), s.Twitter())
}

// MetaTags implements Page.
func (s *Story) MetaTags() []string { return Tags(s, nil) }

// tree builds the story tree around the given social blocks so card share
// pages can swap them.
func (s *Story) tree(metadata, og, twitter *attrs.Tree) *attrs.Tree {
	cfg := s.config
	keywords := strings.Join(s.Keywords(), ",")

	return overMetadata(metadata, attrs.Of(
		"title", pageTitle(metadata, s.fallbackTitle()),
		"description", s.description(),
		"og", og,
		"twitter", twitter,
		"fb", attrs.Of("app_id", optional(cfg.Facebook.AppID)),
		"article", attrs.Of("publisher", optional(cfg.SocialLinks.FacebookURL)),
		"msvalidate.01", optional(cfg.Integrations.Bing.AppID),
		"canonical", s.URL(),
		"al:android:package", optional(cfg.AppsData.AndroidPackage),
		"al:android:app_name", optional(cfg.AppsData.AndroidAppName),
		"al:android:url", "quintypefb://"+cfg.SketchesHost+"/"+s.story.Slug,
		"news_keywords", keywords,
		"keywords", keywords,
		"standout", s.StandoutURL(),
	))
}

// OpenGraph returns the story's og block.
func (s *Story) OpenGraph() *attrs.Tree {
	og := attrs.Of(
		"title", s.story.Headline,
		"type", "article",
		"url", s.URL(),
		"site_name", optional(s.config.Title),
		"description", s.story.Summary,
		"image", s.heroImageURL(),
	)
	if m := s.story.HeroImageMetadata; m != nil {
		og.Set("image:width", m.Width)
		og.Set("image:height", m.Height)
	}
	return og
}

// Twitter returns the story's twitter card block.
func (s *Story) Twitter() *attrs.Tree {
	return attrs.Of(
		"title", s.story.Headline,
		"description", s.story.Summary,
		"card", "summary_large_image",
		"site", optional(s.config.SocialAppCredentials.Twitter.Username),
		"image", attrs.Of("src", s.heroImageURL()),
	)
}

// URL is the story's canonical URL: the editor's canonical-url, the seo og
// url, or the story path on the site host.
func (s *Story) URL() string {
	return firstNonEmpty(
		s.story.CanonicalURL,
		s.story.SEO.OG.URL,
		s.config.SketchesHost+"/"+s.story.Slug,
	)
}

// Keywords returns the explicit meta keywords, or the story's tag names when
// none are set.
func (s *Story) Keywords() []string {
	if kw := compact(s.story.SEO.MetaKeywords); len(kw) > 0 {
		return kw
	}
	names := make([]string, 0, len(s.story.Tags))
	for _, t := range s.story.Tags {
		names = append(names, t.Name)
	}
	return compact(names)
}

// StandoutURL is the story URL on the site host when the story is flagged as
// a Google News standout, else empty.
func (s *Story) StandoutURL() string {
	if !s.story.SEO.GoogleNewsStandout {
		return ""
	}
	return s.config.SketchesHost + "/" + s.story.Slug
}

func (s *Story) fallbackTitle() string {
	if s.story.SEO.MetaTitle != "" {
		return s.story.SEO.MetaTitle
	}
	return s.story.Headline + " - " + s.config.Title
}

func (s *Story) description() string {
	if d := strings.TrimSpace(s.story.SEO.MetaDescription); d != "" {
		return d
	}
	return strings.TrimSpace(s.story.Summary)
}

func (s *Story) heroImageURL() string {
	return imageURL(s.config.CDNName, s.story.HeroImageS3Key)
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// StoryElement is the share page of a single story element. Its tags
// depend only on the story the element belongs to.
type StoryElement struct {
	base
	story *models.Story
}

// NewStoryElement returns the story element page of story.
func NewStoryElement(cfg *models.Config, story *models.Story) *StoryElement {
	if story == nil {
		story = &models.Story{}
	}
	return &StoryElement{
		base:  newBase(cfg, models.PageStoryElement, models.NoOwner),
		story: story,
	}
}

// BuildTree implements Page.
func (e *StoryElement) BuildTree(metadata *attrs.Tree) *attrs.Tree {
	return overMetadata(metadata, attrs.Of(
		"title", pageTitle(metadata, e.story.Headline+" - "+e.config.Title),
		"canonical", optional(e.story.CanonicalURL),
	))
}

// MetaTags implements Page.
func (e *StoryElement) MetaTags() []string { return Tags(e, nil) }
