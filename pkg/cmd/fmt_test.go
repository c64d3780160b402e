package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mybatis-tools/mapperfmt/pkg/cmd/testutil"
	"github.com/mybatis-tools/mapperfmt/pkg/config"
	"github.com/mybatis-tools/mapperfmt/pkg/consts"
)

const messyMapper = `<mapper namespace="app.ItemMapper">
<select id="findById">
select id, price from items where id = #{id}
</select>
</mapper>
`

const canonicalMapper = `<mapper namespace="app.ItemMapper">
    <select id="findById">
        SELECT
            id,
            price
        FROM
            items
        WHERE
            id = #{id}
    </select>
</mapper>
`

func TestFmtCommand_Stdin(t *testing.T) {
	out, err := testutil.RunCommandInput(t, fmtCmd(nil, zap.NewNop()), "select id, user_name from users")
	require.NoError(t, err)
	require.Equal(t, "SELECT\n    id,\n    user_name\nFROM\n    users\n", out)
}

func TestFmtCommand_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.xml")
	require.NoError(t, os.WriteFile(path, []byte(messyMapper), consts.ModeFile))

	out, err := testutil.RunCommand(t, fmtCmd(nil, zap.NewNop()), path)
	require.NoError(t, err)
	require.Equal(t, canonicalMapper, out)
}

func TestFmtCommand_WriteBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.xml")
	require.NoError(t, os.WriteFile(path, []byte(messyMapper), consts.ModeFile))

	out, err := testutil.RunCommand(t, fmtCmd(nil, zap.NewNop()), "-w", path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, canonicalMapper, string(data))

	// A second run finds nothing left to change.
	out, err = testutil.RunCommand(t, fmtCmd(nil, zap.NewNop()), "-w", path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, canonicalMapper, string(data))
}

func TestFmtCommand_ListCleanProject(t *testing.T) {
	// The scaffold mapper is already in canonical form, so a fresh project
	// lists nothing.
	fixture := testutil.TestProject(t)

	out, err := testutil.RunCommand(t, fmtCmd(nil, zap.NewNop()), "-l", fixture.Dir)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestFmtCommand_ListChangedFiles(t *testing.T) {
	fixture := testutil.TestProject(t)
	messy := fixture.WriteMapper(t, "items.xml", messyMapper)

	out, err := testutil.RunCommand(t, fmtCmd(nil, zap.NewNop()), "-l", fixture.Dir)
	require.NoError(t, err)
	require.Equal(t, messy+"\n", out)

	// Listing does not rewrite anything.
	data, err := os.ReadFile(messy)
	require.NoError(t, err)
	require.Equal(t, messyMapper, string(data))
}

func TestFmtCommand_DialectFlag(t *testing.T) {
	source := "select sysdate from dual"

	out, err := testutil.RunCommandInput(t, fmtCmd(nil, zap.NewNop()), source)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n    sysdate\nFROM\n    DUAL\n", out)

	out, err = testutil.RunCommandInput(t, fmtCmd(nil, zap.NewNop()), source, "--dialect", "oracle")
	require.NoError(t, err)
	require.Equal(t, "SELECT\n    SYSDATE\nFROM\n    DUAL\n", out)
}

func TestFmtCommand_ConnectionFlag(t *testing.T) {
	cfg := &config.Config{
		Connections: []*config.Connection{
			{Name: "warehouse", DSN: "jdbc:oracle:thin:@warehouse:1521/dw"},
		},
	}

	out, err := testutil.RunCommandInput(t, fmtCmd(cfg, zap.NewNop()), "select sysdate from dual", "-c", "warehouse")
	require.NoError(t, err)
	require.Equal(t, "SELECT\n    SYSDATE\nFROM\n    DUAL\n", out)
}

func TestFmtCommand_UnknownConnection(t *testing.T) {
	_, err := testutil.RunCommandInput(t, fmtCmd(nil, zap.NewNop()), "select 1", "-c", "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown connection: nope")
}

func TestFmtCommand_IndentFlag(t *testing.T) {
	out, err := testutil.RunCommandInput(t, fmtCmd(nil, zap.NewNop()), "select id from t", "--indent", "2")
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  id\nFROM\n  t\n", out)
}

func TestFmtCommand_WriteRequiresPaths(t *testing.T) {
	_, err := testutil.RunCommand(t, fmtCmd(nil, zap.NewNop()), "-w")
	require.Error(t, err)
	require.Contains(t, err.Error(), "-w and -l require path arguments")
}

func TestFmtCommand_MissingPath(t *testing.T) {
	_, err := testutil.RunCommand(t, fmtCmd(nil, zap.NewNop()), filepath.Join(t.TempDir(), "missing.xml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to access path")
}

func TestFmtCommand_EmptyDirectory(t *testing.T) {
	_, err := testutil.RunCommand(t, fmtCmd(nil, zap.NewNop()), t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no mapper files found in directory")
}

func TestFmtCommand_FlagConfiguration(t *testing.T) {
	command := fmtCmd(nil, zap.NewNop())

	require.Equal(t, "fmt", command.Name)
	require.Equal(t, "[path ...]", command.ArgsUsage)
	require.Len(t, command.Flags, 5)
}
