package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/mybatis-tools/mapperfmt/pkg/consts"
	"github.com/mybatis-tools/mapperfmt/pkg/dialect"
)

// dialects creates a CLI command that lists the supported SQL dialects
// along with their identifier quote characters and vocabulary sizes.
func dialects() *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List supported SQL dialects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tw := tabwriter.NewWriter(cmd.Writer, 0, 0, 2, ' ', 0)

			fmt.Fprintln(tw, "NAME\tQUOTE\tKEYWORDS\tFUNCTIONS")
			for _, name := range dialect.Names() {
				d := dialect.For(name)

				display := name
				if name == consts.DefaultDialect {
					display += " (default)"
				}

				fmt.Fprintf(tw, "%s\t%c\t%d\t%d\n",
					display, d.QuoteChar(), len(d.Keywords()), len(d.Functions()))
			}

			if err := tw.Flush(); err != nil {
				return errors.Wrap(err, "failed to write to output")
			}

			return nil
		},
	}
}
