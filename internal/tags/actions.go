package tags

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/quintype/quintype-seo-go/internal/common"
	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/attrs"
	"github.com/quintype/quintype-seo-go/pkg/db"
	"github.com/quintype/quintype-seo-go/pkg/headparse"
	"github.com/quintype/quintype-seo-go/pkg/logger"
	"github.com/quintype/quintype-seo-go/pkg/render"
	"github.com/quintype/quintype-seo-go/pkg/seo"
)

// Output formats accepted by --format.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTree = "tree"
)

// TagsAction renders the tags of one page to stdout or --output.
func TagsAction(c *cli.Context) error {
	log, err := common.NewLogger(c)
	if err != nil {
		return cli.Exit(err.Error(), common.ExitUsage)
	}
	defer func() { _ = log.Sync() }()
	start := time.Now()

	format := c.String("format")
	switch format {
	case FormatHTML, FormatJSON, FormatYAML, FormatTree:
	default:
		return common.Fail(log, common.ExitUsage, fmt.Sprintf("unknown format %q", format), nil)
	}

	overrides, err := common.ParseOverrides(c.StringSlice("set"))
	if err != nil {
		return common.Fail(log, common.ExitUsage, "invalid --set", err)
	}

	st := common.NewStorage(c)
	cfg, err := common.LoadConfig(c, st, log)
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to load config", err)
	}

	if c.IsSet("metadata-db") {
		if err := appendStoredRecords(c, cfg, log); err != nil {
			return common.Fail(log, common.ExitRuntime, "failed to read seo metadata", err)
		}
	}

	kind := c.String("page")
	page, err := NewPage(kind, cfg, Inputs{
		InputFile: c.String("input"),
		CardFile:  c.String("card"),
		Term:      c.String("term"),
		Name:      c.String("name"),
		Title:     c.String("title"),
		Tag:       c.String("tag"),
	}, st)
	if errors.Is(err, ErrUnknownPageType) || errors.Is(err, errMissingInput) {
		return common.Fail(log, common.ExitUsage, "invalid page", err)
	}
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to read page input", err)
	}

	var opts []render.Option
	if c.Bool("escape") {
		opts = append(opts, render.WithEscaper(render.SanitizeEscaper()))
	}

	out, err := Format(format, page, render.New(opts...), overrides)
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to format tags", err)
	}

	log.Debug("rendered tags",
		logger.String("page", kind),
		logger.String("format", format),
		logger.Duration("elapsed", time.Since(start)))
	if err := st.SaveFile(c.String("output"), out); err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to write output", err)
	}
	return nil
}

// Format renders page in the given output format. The tree format prints
// the attribute tree before flattening, so overrides do not apply to it.
func Format(format string, page seo.Page, r *render.Renderer, overrides []attrs.Entry) ([]byte, error) {
	if format == FormatTree {
		data, err := seo.Tree(page).MarshalJSON()
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}

	tags := seo.Tags(page, r, overrides...)
	if format == FormatHTML {
		if len(tags) == 0 {
			return nil, nil
		}
		return []byte(strings.Join(tags, "\n") + "\n"), nil
	}

	parsed, err := headparse.Parse(tags)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(parsed)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// appendStoredRecords adds the database records after the config file ones,
// so records from files win when both match a page.
func appendStoredRecords(c *cli.Context, cfg *models.Config, log logger.Logger) error {
	database, err := common.OpenDB(c, log)
	if err != nil {
		return err
	}
	defer database.Close()

	stored, err := database.ListRecords(c.Context)
	if err != nil {
		return err
	}
	cfg.SEOMetadata = append(cfg.SEOMetadata, db.Records(stored)...)
	log.Debug("loaded stored seo metadata", logger.Int("records", len(stored)))
	return nil
}
