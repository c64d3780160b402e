package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/mybatis-tools/mapperfmt/pkg/consts"
	"github.com/mybatis-tools/mapperfmt/pkg/project"
)

// initCmd creates a CLI command that initializes a new mapperfmt project.
// It scaffolds a mapperfmt.yaml configuration and a mappers/ directory
// seeded with an example mapper. Existing files are never overwritten, so
// running init in an established project is safe.
//
// Example:
//
//	# Initialize in the current directory
//	mapperfmt init
//
//	# Initialize a new directory for a PostgreSQL project
//	mapperfmt init --dialect postgresql payments-service
func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Initialize a new mapperfmt project",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dialect",
				Aliases: []string{"D"},
				Usage:   "SQL dialect written to the generated configuration",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := "."
			if cmd.Args().Len() > 0 {
				dir = cmd.Args().First()
			}

			if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
				return errors.Wrapf(err, "failed to create directory: %s", dir)
			}

			p := project.New(dir)
			if err := p.Initialize(project.InitOptions{Dialect: cmd.String("dialect")}); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.Writer, "Initialized mapperfmt project in %s\n", dir)
			return err
		},
	}
}
