package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Logger     *zap.Logger
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main mapperfmt CLI application with the
// registered commands and command-line arguments. This function serves as
// the entry point for all CLI operations.
//
// The application loads its configuration from mapperfmt.yaml in the current
// directory when present (or from the file named by MAPPERFMT_CONFIG);
// individual commands expose flags to override it. Execution happens inside
// the fx lifecycle so the process exit code reflects command success.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "mapperfmt",
		Usage: "A formatter for MyBatis mapper XML files",
		Description: `mapperfmt is a CLI tool that formats the mixed SQL/XML content of
MyBatis mapper files: statements are laid out clause by clause, SELECT
column aliases are aligned, and dynamic SQL markup is indented with the
statements it wraps.`,
		Version:  p.Version.Version,
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		defer func() { _ = p.Logger.Sync() }()

		if err := app.Run(p.Ctx, p.Args); err != nil {
			p.Logger.Error("command failed", zap.Error(err))
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
