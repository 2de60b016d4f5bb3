package models

// Story is the subset of a content-API story that SEO tags are built from.
type Story struct {
	ID                string         `json:"id,omitempty"`
	Headline          string         `json:"headline"`
	Summary           string         `json:"summary"`
	Slug              string         `json:"slug"`
	CanonicalURL      string         `json:"canonical-url,omitempty"`
	HeroImageS3Key    string         `json:"hero-image-s3-key"`
	HeroImageMetadata *ImageMetadata `json:"hero-image-metadata,omitempty"`
	SEO               StorySEO       `json:"seo"`
	Tags              []Tag          `json:"tags"`
}

// StorySEO holds the editor-supplied SEO overrides of a story.
type StorySEO struct {
	MetaTitle          string   `json:"meta-title,omitempty"`
	MetaDescription    string   `json:"meta-description,omitempty"`
	MetaKeywords       []string `json:"meta-keywords"`
	GoogleNewsStandout bool     `json:"meta_google_news_standout,omitempty"`
	OG                 StoryOG  `json:"og"`
}

type StoryOG struct {
	URL string `json:"url,omitempty"`
}

type Tag struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// ImageMetadata carries image dimensions in pixels.
type ImageMetadata struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Card is one card of a story; card share pages override the story's social
// blocks with the card's own share settings.
type Card struct {
	ID       string       `json:"id"`
	Metadata CardMetadata `json:"metadata"`
}

type CardMetadata struct {
	SocialShare SocialShare `json:"social-share"`
}

type SocialShare struct {
	Title   string      `json:"title,omitempty"`
	Message string      `json:"message,omitempty"`
	Image   *ShareImage `json:"image,omitempty"`
}

type ShareImage struct {
	Key      string         `json:"key"`
	Metadata *ImageMetadata `json:"metadata,omitempty"`
}

// IsEmpty reports whether the card carries nothing to share. A nil card is
// empty.
func (c *Card) IsEmpty() bool {
	return c == nil || (c.ID == "" && c.Metadata == CardMetadata{})
}
