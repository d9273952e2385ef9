package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyskel/pyskel/internal/config"
)

// chdir replicates t.Chdir (added in Go 1.24) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func newRoot() *cobra.Command {
	root := RootCmd()
	root.AddCommand(NewCmd())
	root.AddCommand(DefaultsCmd())
	return root
}

func TestNewCommand_CreatesProject(t *testing.T) {
	chdir(t, t.TempDir())

	root := newRoot()
	root.SetArgs([]string{"new", "cli-made", "cli_pkg"})
	require.NoError(t, root.Execute())

	info, err := os.Stat(filepath.Join("Cli-Made", "src", "cli_pkg"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = os.Stat(filepath.Join("Cli-Made", "docs"))
	assert.True(t, os.IsNotExist(err), "docs should be off by default")
}

func TestNewCommand_DocFlag(t *testing.T) {
	chdir(t, t.TempDir())

	root := newRoot()
	root.SetArgs([]string{"new", "documented", "doc_pkg", "--doc"})
	require.NoError(t, root.Execute())

	info, err := os.Stat(filepath.Join("Documented", "docs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewCommand_DryRun(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	root := newRoot()
	root.SetArgs([]string{"new", "ghost-project", "ghost_pkg", "--dry-run"})
	require.NoError(t, root.Execute())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewCommand_DefaultsFileEnablesDocs(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, config.Write(".", &config.Defaults{
		Scaffold: config.ScaffoldDefaults{Docs: true},
	}))

	root := newRoot()
	root.SetArgs([]string{"new", "defaulted", "def_pkg"})
	require.NoError(t, root.Execute())

	info, err := os.Stat(filepath.Join("Defaulted", "docs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDefaultsInitAndShow(t *testing.T) {
	chdir(t, t.TempDir())

	root := newRoot()
	root.SetArgs([]string{"defaults", "init", "--doc"})
	require.NoError(t, root.Execute())

	assert.True(t, HasDefaultsConfigured())

	defaults, err := config.Load(".")
	require.NoError(t, err)
	assert.True(t, defaults.Scaffold.Docs)
	assert.False(t, defaults.Scaffold.Git)
}

func TestHasDefaultsConfigured(t *testing.T) {
	chdir(t, t.TempDir())

	assert.False(t, HasDefaultsConfigured())

	require.NoError(t, os.WriteFile(config.FileName, []byte("scaffold:\n  docs: true\n"), 0644))
	assert.True(t, HasDefaultsConfigured())

	require.NoError(t, os.WriteFile(config.FileName, []byte(":\tnot yaml ["), 0644))
	assert.False(t, HasDefaultsConfigured())
}
