package common

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/quintype/quintype-seo-go/models"
	"github.com/quintype/quintype-seo-go/pkg/db"
	"github.com/quintype/quintype-seo-go/pkg/logger"
	"github.com/quintype/quintype-seo-go/pkg/storage"
)

// NewLogger builds the action logger from --log-level and --quiet. Logs go
// to the app's error writer.
func NewLogger(c *cli.Context) (logger.Logger, error) {
	level := c.String("log-level")
	if c.Bool("quiet") {
		level = "error"
	}
	return logger.New(logger.Config{Level: level, Output: errWriter(c)})
}

// NewStorage binds storage to the app's reader and writer.
func NewStorage(c *cli.Context) *storage.Storage {
	st := storage.New()
	if c.App.Reader != nil {
		st.Stdin = c.App.Reader
	}
	if c.App.Writer != nil {
		st.Stdout = c.App.Writer
	}
	return st
}

// LoadConfig loads the --config files, or DefaultConfigFile when present.
// Without any file the configuration is empty.
func LoadConfig(c *cli.Context, st *storage.Storage, log logger.Logger) (*models.Config, error) {
	paths := c.StringSlice("config")
	if len(paths) == 0 && st.HasFile(DefaultConfigFile) {
		paths = []string{DefaultConfigFile}
	}

	cfg, err := models.LoadConfig(paths...)
	if errors.Is(err, models.ErrNoConfig) {
		log.Warn("no config file given, using an empty configuration")
		return &models.Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	log.Debug("loaded config",
		logger.Strings("files", paths),
		logger.Int("seo_metadata_records", len(cfg.SEOMetadata)))
	return cfg, nil
}

// OpenDB opens --metadata-db, or the default database next to the binary.
func OpenDB(c *cli.Context, log logger.Logger) (*db.DB, error) {
	path := c.String("metadata-db")
	if path == "" {
		var err error
		if path, err = db.DefaultPath(); err != nil {
			return nil, err
		}
	}

	database, err := db.Open(c.Context, path, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// Fail logs err and returns it as a cli exit error with the given code.
func Fail(log logger.Logger, code int, msg string, err error) error {
	if err == nil {
		log.Error(msg)
		return cli.Exit(msg, code)
	}
	log.Error(msg, logger.Error(err))
	return cli.Exit(fmt.Sprintf("%s: %v", msg, err), code)
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}
