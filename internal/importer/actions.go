package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/quintype/quintype-seo-go/internal/common"
	pkgimporter "github.com/quintype/quintype-seo-go/pkg/importer"
	"github.com/quintype/quintype-seo-go/pkg/logger"
	"github.com/quintype/quintype-seo-go/pkg/storage"
)

// Command returns the import-story command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "import-story",
		Usage: "Build a story JSON payload from a saved article page",
		Description: `Extracts the headline, summary, hero image, keywords, tags and canonical
URL of a saved article page. The output can be fed to 'tags --page story --input'.

Examples:
  quintype-seo import-story --html article.html --url https://site.com/news/slug --cdn https://cdn.site.com/
  curl -s https://site.com/news/slug | quintype-seo import-story --html - --url https://site.com/news/slug --keywords 5`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "html",
				Usage:    "saved article HTML (- for stdin)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "url",
				Usage:    "URL the page was served from",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "cdn",
				Usage: "CDN base; hero images under it become image keys (default: cdn-name from config)",
			},
			&cli.IntFlag{
				Name:  "keywords",
				Usage: "derive this many keywords from the article text when the page has none",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to file instead of stdout",
			},
		},
		Action: ImportStoryAction,
	}
}

// ImportStoryAction prints the Story JSON extracted from a saved article page.
func ImportStoryAction(c *cli.Context) error {
	log, err := common.NewLogger(c)
	if err != nil {
		return cli.Exit(err.Error(), common.ExitUsage)
	}
	defer func() { _ = log.Sync() }()

	rawURL := common.SanitizeURL(c.String("url"))
	pageURL, err := url.Parse(rawURL)
	if err != nil || pageURL.Scheme == "" || pageURL.Host == "" {
		return common.Fail(log, common.ExitUsage, fmt.Sprintf("invalid --url %q", c.String("url")), err)
	}

	st := common.NewStorage(c)
	cdn := c.String("cdn")
	if cdn == "" {
		cfg, err := common.LoadConfig(c, st, log)
		if err != nil {
			return common.Fail(log, common.ExitRuntime, "failed to load config", err)
		}
		cdn = cfg.CDNName
	}

	raw, err := readPage(st, log, c.String("html"))
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to read page", err)
	}

	story, err := pkgimporter.FromHTML(bytes.NewReader(raw), pageURL, pkgimporter.Options{
		CDNBase:        cdn,
		DeriveKeywords: c.Int("keywords"),
	})
	if errors.Is(err, pkgimporter.ErrNoArticle) {
		return common.Fail(log, common.ExitRuntime, "page has no article", err)
	}
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to import story", err)
	}

	out, err := json.MarshalIndent(story, "", "  ")
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to encode story", err)
	}
	log.Info("imported story",
		logger.String("slug", story.Slug),
		logger.Int("keywords", len(story.SEO.MetaKeywords)),
		logger.Int("tags", len(story.Tags)))

	if err := st.SaveFile(c.String("output"), append(out, '\n')); err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to write output", err)
	}
	return nil
}

// readPage reads the saved article page, logging its size for files.
func readPage(st *storage.Storage, log logger.Logger, htmlPath string) ([]byte, error) {
	if htmlPath != storage.Stdio {
		if stats, err := st.GetFileStats(htmlPath); err == nil {
			log.Debug("reading article page",
				logger.String("file", htmlPath),
				logger.Int64("size_bytes", stats.SizeBytes))
		}
	}
	return st.ReadFile(htmlPath)
}
