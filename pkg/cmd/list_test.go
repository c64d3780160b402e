package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mybatis-tools/mapperfmt/pkg/cmd/testutil"
)

func TestListCommand_PrintsStatements(t *testing.T) {
	fixture := testutil.TestProject(t)

	out, err := testutil.RunCommand(t, list(), fixture.Dir)
	require.NoError(t, err)

	require.Contains(t, out, "app.UserMapper ("+filepath.Join(fixture.Dir, "mappers", "example.xml")+")")
	require.Contains(t, out, "findById")
	require.Contains(t, out, "create")
	require.Contains(t, out, "select")
	require.Contains(t, out, "insert")
}

func TestListCommand_SkipsNonMappers(t *testing.T) {
	fixture := testutil.TestProject(t)
	fixture.WriteMapper(t, "beans.xml", `<beans><bean id="x"/></beans>`)

	out, err := testutil.RunCommand(t, list(), fixture.Dir)
	require.NoError(t, err)
	require.NotContains(t, out, "beans.xml")
}

func TestListCommand_EmptyDirectory(t *testing.T) {
	out, err := testutil.RunCommand(t, list(), t.TempDir())
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestListCommand_MissingDirectory(t *testing.T) {
	_, err := testutil.RunCommand(t, list(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to walk")
}
