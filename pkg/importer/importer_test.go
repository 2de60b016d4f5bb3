package importer

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/seo"
)

const articlePage = `<!DOCTYPE html>
<html>
<head>
  <title>Monsoon arrives early in Kerala</title>
  <meta property="og:title" content="Monsoon arrives early in Kerala">
  <meta name="description" content="The southwest monsoon reached the coast three days ahead of schedule.">
  <meta property="og:description" content="The southwest monsoon reached the coast three days ahead of schedule.">
  <meta property="og:image" content="https://cdn.example.com/2024/06/monsoon-rain.jpg">
  <meta property="og:image:width" content="1200">
  <meta property="og:image:height" content="630">
  <meta name="keywords" content="monsoon, kerala, , weather">
  <meta property="article:tag" content="Monsoon">
  <meta property="article:tag" content="Kerala">
  <link rel="canonical" href="https://news.example.com/weather/monsoon-arrives-early">
</head>
<body>
  <header><nav><a href="/">Home</a> <a href="/weather">Weather</a></nav></header>
  <article>
    <h1>Monsoon arrives early in Kerala</h1>
    <p>The southwest monsoon reached the Kerala coast on Thursday, three days ahead of its normal onset date, the weather department said in a statement issued on Thursday morning.</p>
    <p>Heavy rainfall was recorded across several districts, with the coastal regions receiving more than eighty millimetres of rain in twenty four hours. Fishermen have been advised not to venture into the sea.</p>
    <p>The early onset is expected to bring relief to farmers who have been waiting to begin sowing of the kharif crop. Officials said reservoir levels were below average for this time of the year.</p>
    <p>The monsoon is likely to advance further into the southern peninsula over the next week, covering Karnataka and parts of Tamil Nadu, according to the forecast released by the department.</p>
  </article>
  <footer>Copyright Example News</footer>
</body>
</html>`

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestFromHTML(t *testing.T) {
	pageURL := mustURL(t, "https://news.example.com/weather/monsoon-arrives-early/")

	story, err := FromHTML(strings.NewReader(articlePage), pageURL, Options{CDNBase: "https://cdn.example.com/"})
	require.NoError(t, err)

	assert.Equal(t, "Monsoon arrives early in Kerala", story.Headline)
	assert.Equal(t, "The southwest monsoon reached the coast three days ahead of schedule.", story.Summary)
	assert.Equal(t, "monsoon-arrives-early", story.Slug)
	assert.Equal(t, "https://news.example.com/weather/monsoon-arrives-early", story.CanonicalURL)
	assert.Equal(t, "2024/06/monsoon-rain.jpg", story.HeroImageS3Key)
	assert.Equal(t, &models.ImageMetadata{Width: 1200, Height: 630}, story.HeroImageMetadata)
	assert.Equal(t, []string{"monsoon", "kerala", "weather"}, story.SEO.MetaKeywords)
	assert.Equal(t, []models.Tag{{Name: "Monsoon"}, {Name: "Kerala"}}, story.Tags)
	assert.False(t, story.SEO.GoogleNewsStandout)
}

func TestFromHTML_ForeignImageKeptVerbatim(t *testing.T) {
	story, err := FromHTML(strings.NewReader(articlePage), mustURL(t, "https://news.example.com/a"), Options{CDNBase: "https://images.other/"})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/2024/06/monsoon-rain.jpg", story.HeroImageS3Key)
}

func TestFromHTML_FeedsStoryPage(t *testing.T) {
	story, err := FromHTML(strings.NewReader(articlePage), mustURL(t, "https://news.example.com/weather/monsoon-arrives-early"), Options{CDNBase: "https://cdn.example.com/"})
	require.NoError(t, err)

	cfg := &models.Config{Title: "Example News", CDNName: "https://cdn.example.com/", SketchesHost: "https://news.example.com"}
	tags := seo.NewStory(cfg, story).MetaTags()

	assert.Contains(t, tags, `<meta content= "https://cdn.example.com/2024/06/monsoon-rain.jpg" property= "og:image">`)
	assert.Contains(t, tags, `<meta content= "monsoon,kerala,weather" name= "keywords">`)
	assert.Contains(t, tags, `<link rel="canonical" href="https://news.example.com/weather/monsoon-arrives-early" />`)
}

func TestFromHTML_NewsKeywordsFallback(t *testing.T) {
	page := strings.Replace(articlePage, `name="keywords"`, `name="news_keywords"`, 1)

	story, err := FromHTML(strings.NewReader(page), mustURL(t, "https://news.example.com/a"), Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"monsoon", "kerala", "weather"}, story.SEO.MetaKeywords)
}

func TestFromHTML_NoArticle(t *testing.T) {
	_, err := FromHTML(strings.NewReader(`<html><head></head><body></body></html>`), mustURL(t, "https://news.example.com/empty"), Options{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoArticle), "got %v", err)
}

func TestFromHTML_RequiresURL(t *testing.T) {
	_, err := FromHTML(strings.NewReader(articlePage), nil, Options{})
	assert.Error(t, err)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://x.com/section/story-slug", "story-slug"},
		{"https://x.com/section/story-slug/", "story-slug"},
		{"https://x.com/", ""},
		{"https://x.com", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slug(mustURL(t, tt.raw)), tt.raw)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b ,"))
	assert.Nil(t, splitList(""))
}

func TestFromHTML_DerivesKeywordsWhenMissing(t *testing.T) {
	page := strings.Replace(articlePage, `<meta name="keywords" content="monsoon, kerala, , weather">`, "", 1)
	pageURL := mustURL(t, "https://news.example.com/weather/monsoon-arrives-early")

	story, err := FromHTML(strings.NewReader(page), pageURL, Options{})
	require.NoError(t, err)
	assert.Empty(t, story.SEO.MetaKeywords)

	story, err = FromHTML(strings.NewReader(page), pageURL, Options{DeriveKeywords: 3})
	require.NoError(t, err)
	require.Len(t, story.SEO.MetaKeywords, 3)
	assert.Equal(t, "monsoon", story.SEO.MetaKeywords[0])

	story, err = FromHTML(strings.NewReader(articlePage), pageURL, Options{DeriveKeywords: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"monsoon", "kerala", "weather"}, story.SEO.MetaKeywords)
}
