package models

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const baseConfig = `
title: Site
cdn-name: https://cdn/
sketches-host: https://site.com
facebook:
  app-id: "123"
integrations:
  bing:
    app-id: BING
social-app-credentials:
  twitter:
    username: "@site"
apps-data:
  al:android:package: com.site.app
  al:android:app-name: Site App
seo-metadata:
  - owner-type: home
    owner-id: null
    data:
      page-title: Welcome
      description: Front page
  - owner-type: section
    owner-id: 42
    data:
      description: Politics
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(baseConfig))
	require.NoError(t, err)

	assert.Equal(t, "Site", cfg.Title)
	assert.Equal(t, "https://cdn/", cfg.CDNName)
	assert.Equal(t, "123", cfg.Facebook.AppID)
	assert.Equal(t, "BING", cfg.Integrations.Bing.AppID)
	assert.Equal(t, "@site", cfg.SocialAppCredentials.Twitter.Username)
	assert.Equal(t, "com.site.app", cfg.AppsData.AndroidPackage)
	assert.Equal(t, "Site App", cfg.AppsData.AndroidAppName)

	require.Len(t, cfg.SEOMetadata, 2)
	assert.Equal(t, PageHome, cfg.SEOMetadata[0].OwnerType)
	assert.False(t, cfg.SEOMetadata[0].OwnerID.Valid)
	assert.Equal(t, []string{"page-title", "description"}, cfg.SEOMetadata[0].Data.Keys())
	assert.True(t, cfg.SEOMetadata[1].OwnerID.Equal(NumericOwnerID(42)))
}

func TestParseConfig_JSON(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"title":"Site","seo-metadata":[{"owner-type":"tag","owner-id":"cricket","data":{"z":1,"a":2}}]}`))
	require.NoError(t, err)

	require.Len(t, cfg.SEOMetadata, 1)
	assert.Equal(t, OwnerIDFrom("cricket"), cfg.SEOMetadata[0].OwnerID)
	assert.Equal(t, []string{"z", "a"}, cfg.SEOMetadata[0].Data.Keys())
}

func TestLoadConfig_LayersFiles(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", baseConfig)
	site := writeFile(t, dir, "site.yaml", `
title: Override
seo-metadata:
  - owner-type: home
    data:
      page-title: Shadowed
`)

	cfg, err := LoadConfig(base, site)
	require.NoError(t, err)

	assert.Equal(t, "Override", cfg.Title)
	assert.Equal(t, "https://cdn/", cfg.CDNName)
	require.Len(t, cfg.SEOMetadata, 3)
	assert.Equal(t, "Welcome", cfg.SEOMetadata[0].Data.String("page-title"))
	assert.Equal(t, "Shadowed", cfg.SEOMetadata[2].Data.String("page-title"))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, "test.env", "SEO_CDN_NAME=https://env-cdn/\n")
	t.Setenv("ENV_FILE", envFile)
	t.Setenv("SEO_SITE_TITLE", "From Env")
	t.Setenv("SEO_CDN_NAME", "")
	os.Unsetenv("SEO_CDN_NAME")

	cfg, err := LoadConfig(writeFile(t, dir, "c.yaml", baseConfig))
	require.NoError(t, err)

	assert.Equal(t, "From Env", cfg.Title)
	assert.Equal(t, "https://env-cdn/", cfg.CDNName)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrNoConfig)

	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	_, err = LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, t.TempDir(), "bad.yaml", "seo-metadata: [owner-type")
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestOwnerID(t *testing.T) {
	assert.True(t, NoOwner.Equal(OwnerID{}))
	assert.False(t, NoOwner.Equal(OwnerIDFrom("")))
	assert.True(t, NumericOwnerID(7).Equal(OwnerIDFrom("7")))
	assert.False(t, OwnerIDFrom("a").Equal(OwnerIDFrom("b")))

	var ids []OwnerID
	require.NoError(t, json.Unmarshal([]byte(`[null, "x", 12]`), &ids))
	assert.Equal(t, []OwnerID{NoOwner, OwnerIDFrom("x"), OwnerIDFrom("12")}, ids)

	out, err := json.Marshal(ids)
	require.NoError(t, err)
	assert.Equal(t, `[null,"x","12"]`, string(out))
}

func TestOwnerID_NumericForms(t *testing.T) {
	var ids []OwnerID
	require.NoError(t, json.Unmarshal([]byte(`[42, 42.0, 4.2e1, 4.5, "42.0"]`), &ids))
	assert.Equal(t, []OwnerID{
		NumericOwnerID(42), NumericOwnerID(42), NumericOwnerID(42), OwnerIDFrom("4.5"), OwnerIDFrom("42.0"),
	}, ids)

	var rec []SEOMetadataRecord
	require.NoError(t, yaml.Unmarshal([]byte("- owner-id: 42.0\n- owner-id: 42\n- owner-id: '42.0'\n"), &rec))
	require.Len(t, rec, 3)
	assert.True(t, rec[0].OwnerID.Equal(NumericOwnerID(42)))
	assert.True(t, rec[1].OwnerID.Equal(NumericOwnerID(42)))
	assert.Equal(t, OwnerIDFrom("42.0"), rec[2].OwnerID)
}

func TestCardIsEmpty(t *testing.T) {
	var nilCard *Card
	assert.True(t, nilCard.IsEmpty())
	assert.True(t, (&Card{}).IsEmpty())
	assert.False(t, (&Card{ID: "c1"}).IsEmpty())
	assert.False(t, (&Card{Metadata: CardMetadata{SocialShare: SocialShare{Title: "t"}}}).IsEmpty())
}

func TestCollectionSectionOwner(t *testing.T) {
	assert.Equal(t, NoOwner, Collection{}.SectionOwner())
	c := Collection{Metadata: CollectionMetadata{Section: []Section{{ID: 5}, {ID: 6}}}}
	assert.Equal(t, NumericOwnerID(5), c.SectionOwner())
}
