package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mybatis-tools/mapperfmt/pkg/cmd/testutil"
	"github.com/mybatis-tools/mapperfmt/pkg/consts"
)

func TestHighlightCommand_FormatsBeforeStyling(t *testing.T) {
	// Without a terminal attached the styles render as plain text, so the
	// output is exactly the canonical formatting.
	path := filepath.Join(t.TempDir(), "items.xml")
	require.NoError(t, os.WriteFile(path, []byte(messyMapper), consts.ModeFile))

	out, err := testutil.RunCommand(t, highlightCmd(nil), path)
	require.NoError(t, err)
	require.Equal(t, canonicalMapper, out)
}

func TestHighlightCommand_RequiresPath(t *testing.T) {
	_, err := testutil.RunCommand(t, highlightCmd(nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestHighlightCommand_MissingFile(t *testing.T) {
	_, err := testutil.RunCommand(t, highlightCmd(nil), filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read file")
}
