package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/quintype/quintype-seo-go/internal/common"
	"github.com/quintype/quintype-seo-go/internal/importer"
	"github.com/quintype/quintype-seo-go/internal/metadata"
	"github.com/quintype/quintype-seo-go/internal/tags"
	"github.com/quintype/quintype-seo-go/pkg/help"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "quintype-seo",
		Usage:   "Build SEO meta, link and title tags for publisher pages",
		Version: version,
		Description: `Renders the head tags of home, section, search, static, story, card share,
story element and tag pages from a site config, SEO metadata records and
content API payloads.

Config files are layered in the order given; their seo-metadata records are
appended so earlier records win. SEO_SITE_TITLE, SEO_CDN_NAME,
SEO_SKETCHES_HOST, SEO_FACEBOOK_APP_ID and SEO_BING_APP_ID override config
values and may be set in .env.`,
		Flags: common.GlobalFlags(),
		Commands: []*cli.Command{
			tags.Command(),
			metadata.Command(),
			importer.Command(),
			{
				Name:  "quickstart",
				Usage: "Print a YAML quick start",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.QuickstartYAML)
					return err
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitUsage)
	}
}
