package tags

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// Command returns the tags command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "Render the meta, link and title tags of a page",
		Description: `Builds the head tags of one page from the site config, any matching
SEO metadata record and the page's content object (a content API JSON
payload passed with --input).

Examples:
  quintype-seo tags --page home
  quintype-seo tags --page story --input story.json --format json
  quintype-seo tags --page card-share --input story.json --card card.json
  quintype-seo tags --page tag --tag cricket --set robots=noindex`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "page",
				Aliases:  []string{"p"},
				Usage:    "page type: " + strings.Join(Kinds, ", "),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "story, section or collection JSON (- for stdin)",
			},
			&cli.StringFlag{
				Name:  "card",
				Usage: "card JSON for card-share pages",
			},
			&cli.StringFlag{
				Name:  "term",
				Usage: "search term for search pages",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "static page name (metadata owner id)",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "static page title",
			},
			&cli.StringFlag{
				Name:  "tag",
				Usage: "tag name for tag pages",
			},
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "override a flattened key, e.g. --set robots=noindex (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "escape",
				Usage: "strip markup and HTML-escape values",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   FormatHTML,
				Usage:   "output format: html, json, yaml or tree",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to file instead of stdout",
			},
		},
		Action: TagsAction,
	}
}
