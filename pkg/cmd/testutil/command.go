// Package testutil provides helpers for testing CLI commands against
// isolated project fixtures.
package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes a command with the given arguments and returns its
// captured output.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()

	return RunCommandInput(t, command, "", args...)
}

// RunCommandInput executes a command with the given stdin content and
// arguments and returns its captured output. The command runs against a
// rebuilt top-level app so its writer can be replaced with a buffer.
func RunCommandInput(t *testing.T, command *cli.Command, input string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:      command.Name,
		Flags:     command.Flags,
		Action:    command.Action,
		Reader:    strings.NewReader(input),
		Writer:    &buf,
		ErrWriter: io.Discard,
	}

	err := app.Run(context.Background(), append([]string{command.Name}, args...))
	return buf.String(), err
}
