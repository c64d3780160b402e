package cmd

import (
	"github.com/urfave/cli/v3"

	"github.com/mybatis-tools/mapperfmt/pkg/config"
	"github.com/mybatis-tools/mapperfmt/pkg/dialect"
	"github.com/mybatis-tools/mapperfmt/pkg/format"
)

// optionFlags returns the formatting flags shared by commands that render
// mapper content.
func optionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dialect",
			Aliases: []string{"D"},
			Usage:   "SQL dialect keywords are classified against",
		},
		&cli.StringFlag{
			Name:    "connection",
			Aliases: []string{"c"},
			Usage:   "named connection whose dialect should be used",
		},
		&cli.IntFlag{
			Name:  "indent",
			Usage: "number of spaces per indentation level",
		},
	}
}

// options resolves formatter options from the project configuration and any
// command line overrides. An explicit --dialect wins over --connection.
func options(cmd *cli.Command, cfg *config.Config) (format.FormatterOptions, error) {
	opts := cfg.FormatterOptions()

	if name := cmd.String("connection"); name != "" {
		conn, err := cfg.Connection(name)
		if err != nil {
			return opts, err
		}

		opts.Dialect = dialect.For(conn.DialectName())
	}

	if name := cmd.String("dialect"); name != "" {
		opts.Dialect = dialect.For(name)
	}

	if indent := int(cmd.Int("indent")); indent > 0 {
		opts.IndentSize = indent
	}

	return opts, nil
}
