package metadata

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/quintype/quintype-seo-go/models"
)

var pageTypes = []string{
	string(models.PageHome), string(models.PageSection), string(models.PageSearch),
	string(models.PageStaticPage), string(models.PageStory), string(models.PageStoryElement),
	string(models.PageTag),
}

// Command returns the metadata command and its import, list, check and delete
// subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "metadata",
		Usage: "Manage SEO metadata records",
		Subcommands: []*cli.Command{
			{
				Name:  "import",
				Usage: "Import records from a YAML or JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "record list, or a config file with seo-metadata (- for stdin)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "replace",
						Usage: "remove existing records first",
					},
				},
				Action: ImportAction,
			},
			{
				Name:  "list",
				Usage: "List stored records in match order",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "owner-type",
						Usage: "only records of this page type: " + strings.Join(pageTypes, ", "),
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "table",
						Usage: "table, json or yaml",
					},
				},
				Action: ListAction,
			},
			{
				Name:   "check",
				Usage:  "Report records shadowed by an earlier record for the same page",
				Action: CheckAction,
			},
			{
				Name:  "delete",
				Usage: "Delete the records of one page",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "owner-type",
						Usage:    "page type: " + strings.Join(pageTypes, ", "),
						Required: true,
					},
					&cli.StringFlag{
						Name:  "owner-id",
						Usage: "owner id; omit for singleton pages",
					},
				},
				Action: DeleteAction,
			},
		},
	}
}
