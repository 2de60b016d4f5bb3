package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/quintype/quintype-seo-go/internal/common"
	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/db"
	"github.com/quintype/quintype-seo-go/pkg/logger"
	"github.com/quintype/quintype-seo-go/pkg/seo"
)

// ImportAction loads records from a YAML or JSON file into the database.
func ImportAction(c *cli.Context) error {
	log, err := common.NewLogger(c)
	if err != nil {
		return cli.Exit(err.Error(), common.ExitUsage)
	}
	defer func() { _ = log.Sync() }()

	st := common.NewStorage(c)
	data, err := st.ReadFile(c.String("file"))
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to read records", err)
	}
	records, err := ParseRecords(data)
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to parse records", err)
	}
	warnDuplicates(log, records)

	database, err := common.OpenDB(c, log)
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to open database", err)
	}
	defer database.Close()

	if err := database.ImportRecords(c.Context, records, c.Bool("replace")); err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to import records", err)
	}

	fmt.Fprintf(c.App.Writer, "Imported %d records into %s\n", len(records), database.Path())
	return nil
}

// ListAction prints stored records, optionally for one page type.
func ListAction(c *cli.Context) error {
	log, err := common.NewLogger(c)
	if err != nil {
		return cli.Exit(err.Error(), common.ExitUsage)
	}
	defer func() { _ = log.Sync() }()

	database, err := common.OpenDB(c, log)
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to open database", err)
	}
	defer database.Close()

	var stored []db.StoredRecord
	if ownerType := c.String("owner-type"); ownerType != "" {
		stored, err = database.RecordsFor(c.Context, models.PageType(ownerType))
	} else {
		stored, err = database.ListRecords(c.Context)
	}
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to list records", err)
	}

	switch format := c.String("format"); format {
	case "table":
		return printTable(c.App.Writer, stored)
	case "json":
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		if stored == nil {
			stored = []db.StoredRecord{}
		}
		return enc.Encode(stored)
	case "yaml":
		out, err := yaml.Marshal(db.Records(stored))
		if err != nil {
			return common.Fail(log, common.ExitRuntime, "failed to encode records", err)
		}
		_, err = c.App.Writer.Write(out)
		return err
	default:
		return common.Fail(log, common.ExitUsage, fmt.Sprintf("unknown format %q", format), nil)
	}
}

// CheckAction reports records that can never match because an earlier
// record has the same owner type and owner id.
func CheckAction(c *cli.Context) error {
	log, err := common.NewLogger(c)
	if err != nil {
		return cli.Exit(err.Error(), common.ExitUsage)
	}
	defer func() { _ = log.Sync() }()

	st := common.NewStorage(c)
	cfg, err := common.LoadConfig(c, st, log)
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to load config", err)
	}
	records := cfg.SEOMetadata

	if c.IsSet("metadata-db") {
		database, err := common.OpenDB(c, log)
		if err != nil {
			return common.Fail(log, common.ExitRuntime, "failed to open database", err)
		}
		defer database.Close()

		stored, err := database.ListRecords(c.Context)
		if err != nil {
			return common.Fail(log, common.ExitRuntime, "failed to list records", err)
		}
		records = append(records, db.Records(stored)...)
	}

	dups := warnDuplicates(log, records)
	if len(dups) == 0 {
		fmt.Fprintf(c.App.Writer, "%d records, no duplicates\n", len(records))
		return nil
	}

	for _, d := range dups {
		fmt.Fprintf(c.App.Writer, "%s %s: records %s (only the first is used)\n",
			d.Key.OwnerType, d.Key.OwnerID, joinInts(d.Positions))
	}
	return cli.Exit(fmt.Sprintf("found %d duplicate record keys", len(dups)), common.ExitRuntime)
}

// DeleteAction removes the records of one page.
func DeleteAction(c *cli.Context) error {
	log, err := common.NewLogger(c)
	if err != nil {
		return cli.Exit(err.Error(), common.ExitUsage)
	}
	defer func() { _ = log.Sync() }()

	ownerID := models.NoOwner
	if c.IsSet("owner-id") {
		ownerID = models.OwnerIDFrom(c.String("owner-id"))
	}

	database, err := common.OpenDB(c, log)
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to open database", err)
	}
	defer database.Close()

	n, err := database.DeleteRecords(c.Context, models.PageType(c.String("owner-type")), ownerID)
	if err != nil {
		return common.Fail(log, common.ExitRuntime, "failed to delete records", err)
	}

	fmt.Fprintf(c.App.Writer, "Deleted %d records\n", n)
	return nil
}

// ParseRecords accepts a list of records, or a config document whose
// seo-metadata list is used.
func ParseRecords(data []byte) ([]models.SEOMetadataRecord, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var records []models.SEOMetadataRecord
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("parse records: %w", err)
		}
		return records, nil
	case yaml.MappingNode:
		cfg, err := models.ParseConfig(data)
		if err != nil {
			return nil, err
		}
		return cfg.SEOMetadata, nil
	default:
		return nil, fmt.Errorf("parse records: line %d: expected a list or a config mapping", root.Line)
	}
}

func warnDuplicates(log logger.Logger, records []models.SEOMetadataRecord) []seo.Duplicate {
	dups := seo.DuplicateRecords(records)
	for _, d := range dups {
		log.Warn("duplicate seo metadata record",
			logger.String("owner_type", string(d.Key.OwnerType)),
			logger.String("owner_id", d.Key.OwnerID.String()),
			logger.Ints("positions", d.Positions))
	}
	return dups
}

func printTable(w io.Writer, stored []db.StoredRecord) error {
	if len(stored) == 0 {
		_, err := fmt.Fprintln(w, "No records found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tOWNER TYPE\tOWNER ID\tKEYS\tCREATED")
	for _, r := range stored {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			r.RecordID,
			r.OwnerType,
			r.OwnerID,
			strings.Join(r.Data.Keys(), ","),
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d records\n", len(stored))
	return err
}

func joinInts(in []int) string {
	parts := make([]string, len(in))
	for i, n := range in {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
