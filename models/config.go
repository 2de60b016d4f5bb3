// Package models defines the site configuration, SEO metadata records and
// the content objects that page models read.
package models

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned when LoadConfig is called without any file.
var ErrNoConfig = errors.New("no config file given")

// Config is the publisher configuration consulted while building tags. It is
// read-only once loaded.
type Config struct {
	Title                string               `yaml:"title"`
	CDNName              string               `yaml:"cdn-name"`
	SketchesHost         string               `yaml:"sketches-host"`
	Facebook             Facebook             `yaml:"facebook"`
	Integrations         Integrations         `yaml:"integrations"`
	SocialLinks          SocialLinks          `yaml:"social-links"`
	SocialAppCredentials SocialAppCredentials `yaml:"social-app-credentials"`
	AppsData             AppsData             `yaml:"apps-data"`
	SEOMetadata          []SEOMetadataRecord  `yaml:"seo-metadata"`
}

type Facebook struct {
	AppID string `yaml:"app-id"`
}

type Integrations struct {
	Bing Bing `yaml:"bing"`
}

// Bing carries the webmaster verification id emitted as msvalidate.01.
type Bing struct {
	AppID string `yaml:"app-id"`
}

type SocialLinks struct {
	FacebookURL string `yaml:"facebook-url"`
}

type SocialAppCredentials struct {
	Twitter TwitterCredentials `yaml:"twitter"`
}

type TwitterCredentials struct {
	Username string `yaml:"username"`
}

// AppsData holds Android app-link identifiers.
type AppsData struct {
	AndroidPackage string `yaml:"al:android:package"`
	AndroidAppName string `yaml:"al:android:app-name"`
}

// envOverrides maps environment variables onto config fields. Env always wins
// over files.
var envOverrides = []struct {
	name  string
	apply func(*Config, string)
}{
	{"SEO_SITE_TITLE", func(c *Config, v string) { c.Title = v }},
	{"SEO_CDN_NAME", func(c *Config, v string) { c.CDNName = v }},
	{"SEO_SKETCHES_HOST", func(c *Config, v string) { c.SketchesHost = v }},
	{"SEO_FACEBOOK_APP_ID", func(c *Config, v string) { c.Facebook.AppID = v }},
	{"SEO_BING_APP_ID", func(c *Config, v string) { c.Integrations.Bing.AppID = v }},
}

// ParseConfig decodes one YAML or JSON config document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads the given files in order and layers them: later files
// override scalar settings, and their seo-metadata records are appended after
// earlier ones so earlier records keep precedence. .env files are loaded
// first and SEO_* environment variables are applied last.
func LoadConfig(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		return nil, ErrNoConfig
	}
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	cfg := &Config{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		layer, err := ParseConfig(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := mergo.Merge(cfg, layer, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
			return nil, fmt.Errorf("merge config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// loadEnvFiles loads ENV_FILE when set, otherwise .env.local then .env.
// Missing files are not an error.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}
	for _, f := range []string{".env.local", ".env"} {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	for _, o := range envOverrides {
		if v, ok := os.LookupEnv(o.name); ok && v != "" {
			o.apply(cfg, v)
		}
	}
}
