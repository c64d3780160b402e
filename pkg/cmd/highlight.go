package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/mybatis-tools/mapperfmt/pkg/config"
	"github.com/mybatis-tools/mapperfmt/pkg/format"
	"github.com/mybatis-tools/mapperfmt/pkg/highlight"
	"github.com/mybatis-tools/mapperfmt/pkg/lexer"
)

// highlightCmd creates a CLI command that prints a mapper file with syntax
// colors. The file is formatted first, so the output is the canonical
// rendering with keywords, bind variables, markup, and literals styled for
// the terminal. On a non-TTY output the text is printed unstyled.
//
// Example:
//
//	mapperfmt highlight mappers/user.xml
func highlightCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "highlight",
		Usage:     "Print a formatted mapper file with syntax colors",
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

			formatted := format.Document(opts, string(content))
			toks := lexer.Tokenize(formatted, opts.Dialect)

			if err := highlight.Highlight(cmd.Writer, toks, highlight.DefaultTheme()); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Writer)
			return err
		},
	}
}
