// Package importer builds a Story from a rendered article page so the tag
// builders can be run against pages that are not in the content API.
package importer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/keywords"
)

// ErrNoArticle is returned when the page holds no readable article.
var ErrNoArticle = errors.New("no article found")

// Options tunes how page values are mapped onto the story.
type Options struct {
	// CDNBase is stripped from hero image URLs so they become image keys.
	CDNBase string
	// DeriveKeywords, when positive, fills in that many keywords from the
	// article text if the page has no keywords meta tag.
	DeriveKeywords int
}

// FromHTML extracts the headline, summary and hero image with go-readability
// and reads keywords, tags, canonical URL and image size from the head.
func FromHTML(r io.Reader, pageURL *url.URL, opts Options) (*models.Story, error) {
	if pageURL == nil {
		return nil, fmt.Errorf("page URL is required")
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(raw), pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoArticle, err)
	}

	body, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse article content: %w", err)
	}
	title := normalizeText(article.Title)
	if title == "" && normalizeText(body.Text()) == "" {
		return nil, ErrNoArticle
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	head := doc.Find("head")

	story := &models.Story{
		Headline:       title,
		Summary:        normalizeText(article.Excerpt),
		Slug:           slug(pageURL),
		CanonicalURL:   strings.TrimSpace(head.Find(`link[rel="canonical"]`).First().AttrOr("href", "")),
		HeroImageS3Key: imageKey(article.Image, opts.CDNBase),
		SEO: models.StorySEO{
			MetaDescription: metaContent(head, `meta[name="description"]`),
			MetaKeywords:    splitList(metaContent(head, `meta[name="keywords"]`)),
		},
	}
	if len(story.SEO.MetaKeywords) == 0 {
		story.SEO.MetaKeywords = splitList(metaContent(head, `meta[name="news_keywords"]`))
	}
	if len(story.SEO.MetaKeywords) == 0 && opts.DeriveKeywords > 0 {
		counts := keywords.Merge(keywords.Frequencies(title), keywords.Frequencies(article.TextContent))
		story.SEO.MetaKeywords = keywords.Top(counts, opts.DeriveKeywords)
	}
	if metaContent(head, `meta[name="standout"]`) != "" {
		story.SEO.GoogleNewsStandout = true
	}

	head.Find(`meta[property="article:tag"]`).Each(func(_ int, s *goquery.Selection) {
		if name := normalizeText(s.AttrOr("content", "")); name != "" {
			story.Tags = append(story.Tags, models.Tag{Name: name})
		}
	})

	width, werr := strconv.Atoi(metaContent(head, `meta[property="og:image:width"]`))
	height, herr := strconv.Atoi(metaContent(head, `meta[property="og:image:height"]`))
	if werr == nil && herr == nil {
		story.HeroImageMetadata = &models.ImageMetadata{Width: width, Height: height}
	}

	return story, nil
}

func metaContent(head *goquery.Selection, selector string) string {
	return strings.TrimSpace(head.Find(selector).First().AttrOr("content", ""))
}

// slug is the last segment of the page path.
func slug(u *url.URL) string {
	p := strings.TrimSuffix(u.Path, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}

// imageKey strips the CDN base from image URLs served by it.
func imageKey(image, cdnBase string) string {
	image = strings.TrimSpace(image)
	if cdnBase != "" && strings.HasPrefix(image, cdnBase) {
		return strings.TrimPrefix(image, cdnBase)
	}
	return image
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
