package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mybatis-tools/mapperfmt/pkg/consts"
	"github.com/mybatis-tools/mapperfmt/pkg/project"
)

// ProjectFixture is an initialized mapperfmt project in a temp directory.
type ProjectFixture struct {
	Dir     string
	Project *project.Project
}

// TestProject creates an isolated temp directory with an initialized
// mapperfmt project.
func TestProject(t *testing.T) *ProjectFixture {
	t.Helper()

	dir := t.TempDir()

	p := project.New(dir)
	require.NoError(t, p.Initialize(project.InitOptions{}), "Failed to initialize test project")

	return &ProjectFixture{Dir: dir, Project: p}
}

// WriteMapper writes a mapper file under the fixture's mappers directory and
// returns its path.
func (f *ProjectFixture) WriteMapper(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(f.Dir, "mappers", name)
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))

	return path
}

// ReadFile returns the content of a file relative to the fixture root.
func (f *ProjectFixture) ReadFile(t *testing.T, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(f.Dir, rel))
	require.NoError(t, err)

	return string(data)
}
