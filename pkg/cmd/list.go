package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/mybatis-tools/mapperfmt/pkg/project"
)

// list creates a CLI command that prints the namespaces and statements
// declared by the mapper files in a project. Files that are not mapper
// documents are skipped.
//
// Example:
//
//	$ mapperfmt list
//	app.UserMapper (mappers/user.xml)
//	    select  findById  9
//	    insert  create    19
func list() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List mapper namespaces and statements",
		ArgsUsage: "[dir]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := "."
			if cmd.Args().Len() > 0 {
				dir = cmd.Args().First()
			}

			mappers, err := project.New(dir).Index()
			if err != nil {
				return err
			}

			for _, m := range mappers {
				if m.Namespace == "" && len(m.Statements) == 0 {
					continue
				}

				if _, err := fmt.Fprintf(cmd.Writer, "%s (%s)\n", m.Namespace, m.Path); err != nil {
					return errors.Wrap(err, "failed to write to output")
				}

				tw := tabwriter.NewWriter(cmd.Writer, 0, 0, 2, ' ', 0)
				for _, s := range m.Statements {
					fmt.Fprintf(tw, "    %s\t%s\t%d\n", s.Kind, s.ID, s.Line)
				}
				if err := tw.Flush(); err != nil {
					return errors.Wrap(err, "failed to write to output")
				}
			}

			return nil
		},
	}
}
