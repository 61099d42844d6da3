package clean

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wdsquery/internal/appcontext"
	"github.com/agentstation/wdsquery/pkg/errors"
)

func record(n int) string {
	return "14396-6050" + strings.Repeat(" ", n-10)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "summ.txt")
	out := filepath.Join(dir, "out", "clean.txt")
	input := strings.Join([]string{record(130), record(129), record(126), record(12)}, "\n") + "\n"
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))

	stats, err := Run(in, out)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Read)
	assert.Equal(t, 3, stats.Written)
	assert.Equal(t, 3, stats.Bad)
	assert.Equal(t, 2, stats.Fixed)
	require.Len(t, stats.Rejected, 1)
	assert.Equal(t, 4, stats.Rejected[0].Line)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 130)
	}

	leftovers, err := filepath.Glob(filepath.Join(dir, "out", ".wds_clean_*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "summ.txt")

	_, err := Run(in, in)
	assert.True(t, errors.IsValidationError(err))

	_, err = Run(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt"))
	assert.True(t, errors.IsIO(err))
}

func TestCleanCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "summ.txt")
	out := filepath.Join(dir, "clean.txt")
	require.NoError(t, os.WriteFile(in, []byte(record(129)+"\n"), 0o644))

	cmd := NewCommand(&appcontext.Mock{Format: "json"})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{in, out})
	require.NoError(t, cmd.Execute())
	assert.JSONEq(t, `{"read":1,"written":1,"bad":1,"fixed":1}`, buf.String())
}
