package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/mybatis-tools/mapperfmt/pkg/config"
	"github.com/mybatis-tools/mapperfmt/pkg/consts"
	"github.com/mybatis-tools/mapperfmt/pkg/format"
	"github.com/mybatis-tools/mapperfmt/pkg/project"
)

// fmtCmd creates the CLI command for formatting mapper files. It behaves
// like gofmt: without arguments it formats stdin to stdout, with file or
// directory arguments it formats each mapper it finds.
//
// The command supports three output modes:
//   - Stdout mode (default): formatted content is written to standard output
//   - Write mode (-w): files are rewritten in place when formatting changes them
//   - List mode (-l): paths of files whose formatting differs are printed
//
// Path handling:
//   - File paths: format the specified file directly
//   - Directory paths: recursively format every .xml mapper file below it
//
// Examples:
//
//	# Format stdin to stdout
//	cat user.xml | mapperfmt fmt
//
//	# Format a single file to stdout
//	mapperfmt fmt mappers/user.xml
//
//	# Rewrite all mappers under a directory
//	mapperfmt fmt -w mappers/
//
//	# List mappers that are not canonically formatted
//	mapperfmt fmt -l mappers/
func fmtCmd(cfg *config.Config, logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format mapper files",
		ArgsUsage: "[path ...]",
		Flags: append(optionFlags(),
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := options(cmd, cfg)
			if err != nil {
				return err
			}

			if cmd.Args().Len() == 0 {
				if cmd.Bool("write") || cmd.Bool("list") {
					return errors.New("-w and -l require path arguments")
				}

				return formatReader(cmd.Reader, cmd.Writer, opts)
			}

			files, err := collectFiles(cmd.Args().Slice())
			if err != nil {
				return err
			}

			return formatFiles(cmd, files, opts, logger)
		},
	}
}

// collectFiles expands the path arguments into the list of mapper files to
// format. Directories are walked recursively.
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", arg)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		found, err := project.CollectMappers(arg)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, errors.Errorf("no mapper files found in directory: %s", arg)
		}

		files = append(files, found...)
	}

	return files, nil
}

// formatFiles runs the formatter over each file, honoring the -w and -l
// flags. Rewriting multiple files in place gets a progress bar.
func formatFiles(cmd *cli.Command, files []string, opts format.FormatterOptions, logger *zap.Logger) error {
	writeBack := cmd.Bool("write")
	listOnly := cmd.Bool("list")

	var bar *progressbar.ProgressBar
	if writeBack && !listOnly && len(files) > 1 {
		bar = newProgressBar(len(files))
	}

	for _, file := range files {
		changed, err := formatFile(cmd.Writer, file, opts, writeBack, listOnly)
		if err != nil {
			return err
		}

		logger.Debug("formatted mapper",
			zap.String("path", file),
			zap.Bool("changed", changed))

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return nil
}

// formatFile formats a single mapper file and reports whether its content
// differed from the canonical form.
func formatFile(w io.Writer, path string, opts format.FormatterOptions, writeBack, listOnly bool) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read file: %s", path)
	}

	formatted := format.Document(opts, string(content)) + "\n"
	changed := formatted != string(content)

	if changed && listOnly {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return changed, errors.Wrap(err, "failed to write to output")
		}
	}

	if changed && writeBack {
		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return changed, errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
	}

	if !listOnly && !writeBack {
		if _, err := fmt.Fprint(w, formatted); err != nil {
			return changed, errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return changed, nil
}

// formatReader formats a single document from r onto w.
func formatReader(r io.Reader, w io.Writer, opts format.FormatterOptions) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	if _, err := fmt.Fprintln(w, format.Document(opts, string(content))); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("formatting"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
