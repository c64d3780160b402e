package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/mybatis-tools/mapperfmt/pkg/config"
	"github.com/mybatis-tools/mapperfmt/pkg/lexer"
)

// tokens creates a CLI command that dumps the token stream of a mapper
// file, one token per line with its kind and quoted text. This is mostly a
// debugging aid for understanding how a file will be formatted.
//
// Example:
//
//	$ mapperfmt tokens mappers/user.xml
//	XMLTag        "<select id=\"findById\">"
//	Keyword       "SELECT"
//	Whitespace    " "
//	Identifier    "id"
//	...
func tokens(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Dump the token stream of a mapper file",
		ArgsUsage: "<path>",
		Flags:     optionFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			opts, err := options(cmd, cfg)
			if err != nil {
				return err
			}

			path := cmd.Args().First()

			content, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "failed to read file: %s", path)
			}

			for _, tok := range lexer.Tokenize(string(content), opts.Dialect) {
				if _, err := fmt.Fprintf(cmd.Writer, "%-13s %q\n", tok.Kind, tok.Text); err != nil {
					return errors.Wrap(err, "failed to write to output")
				}
			}

			return nil
		},
	}
}
