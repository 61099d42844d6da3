package completion

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wdsquery/pkg/errors"
)

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "wdsquery"}
	root.AddCommand(&cobra.Command{Use: "decode", Run: func(*cobra.Command, []string) {}})
	root.AddCommand(NewCommand())
	return root
}

func TestGenerate(t *testing.T) {
	root := newRoot()
	for _, shell := range []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell} {
		var buf bytes.Buffer
		require.NoError(t, Generate(root, shell, &buf), shell)
		assert.Contains(t, buf.String(), "wdsquery", shell)
	}

	err := Generate(root, "tcsh", &bytes.Buffer{})
	assert.True(t, errors.IsValidationError(err))
}

func TestPathPrefersHomebrew(t *testing.T) {
	prefix := t.TempDir()
	t.Setenv("HOMEBREW_PREFIX", prefix)

	path, err := Path(ShellZsh)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(prefix, "share", "zsh", "site-functions", "_wdsquery"), path)

	_, err = Path(ShellPowerShell)
	assert.True(t, errors.IsValidationError(err))
}

func TestInstallAndUninstall(t *testing.T) {
	t.Setenv("HOMEBREW_PREFIX", t.TempDir())
	root := newRoot()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "install", ShellFish})
	require.NoError(t, root.Execute())

	path, err := Path(ShellFish)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "wdsquery")
	assert.Contains(t, out.String(), path)

	removed, err := Uninstall(ShellFish)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = Uninstall(ShellFish)
	require.NoError(t, err)
	assert.False(t, removed)
}
