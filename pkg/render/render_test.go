package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintype/quintype-seo-go/pkg/attrs"
	"github.com/quintype/quintype-seo-go/pkg/headparse"
)

func TestRender_Dispatch(t *testing.T) {
	flat := attrs.Flat{
		{Key: "og:title", Value: "OG"},
		{Key: "fb:app_id", Value: "123"},
		{Key: "article:publisher", Value: "https://fb.com/site"},
		{Key: "alternate", Value: []any{
			attrs.Of("href", "/feed", "type", "application/atom+xml", "title", "Site ATOM Feed"),
			attrs.Of("href", "/amp", "type", "text/html", "title", "AMP"),
		}},
		{Key: "canonical", Value: "https://site.com/x"},
		{Key: "title", Value: "Title"},
		{Key: "twitter:card", Value: "summary_large_image"},
		{Key: "msvalidate.01", Value: "BING"},
		{Key: "og:image:width", Value: int64(1200)},
	}

	got := New().Render(flat)

	assert.Equal(t, []string{
		`<meta content= "OG" property= "og:title">`,
		`<meta content= "123" property= "fb:app_id">`,
		`<meta content= "https://fb.com/site" property= "article:publisher">`,
		`<link href="/feed" rel="alternate" title="Site ATOM Feed" type="application/atom+xml" />`,
		`<link href="/amp" rel="alternate" title="AMP" type="text/html" />`,
		`<link rel="canonical" href="https://site.com/x" />`,
		`<title>Title</title>`,
		`<meta content= "summary_large_image" name= "twitter:card">`,
		`<meta content= "BING" name= "msvalidate.01">`,
		`<meta content= "1200" property= "og:image:width">`,
	}, got)
}

func TestRender_NamespaceProperty(t *testing.T) {
	tests := []struct {
		key      string
		property bool
	}{
		{"og", true},
		{"og:title", true},
		{"fb:app_id", true},
		{"article:publisher", true},
		{"twitter:title", false},
		{"al:android:url", false},
		{"ogre", false},
		{"news_keywords", false},
		{"description", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.property, IsProperty(tt.key))

			parsed, err := headparse.Parse(New().Render(attrs.Flat{{Key: tt.key, Value: "v"}}))
			require.NoError(t, err)
			require.Len(t, parsed, 1)
			if tt.property {
				assert.Equal(t, "property", parsed[0].Attribute)
			} else {
				assert.Equal(t, "name", parsed[0].Attribute)
			}
			assert.Equal(t, tt.key, parsed[0].Key)
		})
	}
}

func TestRender_NilRendererAndNilValues(t *testing.T) {
	var r *Renderer

	got := r.Render(attrs.Flat{{Key: "standout", Value: ""}, {Key: "description", Value: nil}})

	assert.Equal(t, []string{
		`<meta content= "" name= "standout">`,
		`<meta content= "" name= "description">`,
	}, got)
}

func TestRender_NoEscapingByDefault(t *testing.T) {
	got := New().Render(attrs.Flat{{Key: "title", Value: "Tom & Jerry <b>"}})

	assert.Equal(t, []string{`<title>Tom & Jerry <b></title>`}, got)
}

func TestRender_WithEscaper(t *testing.T) {
	r := New(WithEscaper(SanitizeEscaper()))

	got := r.Render(attrs.Flat{
		{Key: "title", Value: "Tom & <script>alert(1)</script>Jerry"},
		{Key: "og:title", Value: `say "hi"`},
	})

	require.Len(t, got, 2)
	assert.Equal(t, `<title>Tom &amp; Jerry</title>`, got[0])
	assert.NotContains(t, got[1], `"hi"`)
}
