package common

import "github.com/urfave/cli/v2"

// GlobalFlags are shared by every command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "site config YAML or JSON; repeat to layer files (default: " + DefaultConfigFile + " when present)",
			EnvVars: []string{"SEO_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "metadata-db",
			Usage:   "SQLite database of SEO metadata records",
			EnvVars: []string{"SEO_METADATA_DB"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "debug, info, warn or error",
			EnvVars: []string{"SEO_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
	}
}
