package wds

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wdsquery/pkg/errors"
)

func TestParseFixedWidth(t *testing.T) {
	input := strings.Join([]string{
		fixedLine("14396-6050", "AB", " 0.14", " 1.24", "O"),
		"",
		fixedLine("14396-6050", "AC", "-0.01", "11.0", "V"),
		fixedLine("00001+0001", "", " 5.00", "     ", ""),
	}, "\n")

	cat, err := ParseFixedWidth(strings.NewReader(input), "wds.dat")
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	table, ok := cat.Lookup("14396-6050")
	require.True(t, ok)
	require.Len(t, table.Components, 2)
	ab := table.Components[0]
	assert.Equal(t, "AB", ab.Label)
	assert.Equal(t, "STF1234", ab.Discoverer)
	assert.Equal(t, 1830, ab.FirstEpoch)
	assert.Equal(t, 42, ab.Observations)
	assert.InDelta(t, 0.14, ab.Mag1, 1e-9)
	assert.InDelta(t, 1.24, ab.Mag2, 1e-9)
	assert.Equal(t, "O", ab.Notes)
	assert.Equal(t, "G2V", ab.SpectralType)
	assert.Equal(t, "143929.40-605008.0", ab.Coordinates)

	pair, _ := cat.Lookup("00001+0001")
	assert.Equal(t, "", pair.Components[0].Label)
	assert.True(t, math.IsNaN(pair.Components[0].Mag2))
}

func TestParseFixedWidthShortLine(t *testing.T) {
	_, err := ParseFixedWidth(strings.NewReader("14396-6050STF1234 AB"), "wds.dat")
	require.Error(t, err)
	assert.True(t, errors.IsParse(err))
	var pe *errors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Line)
}

func TestParseCSV(t *testing.T) {
	input := "WDS,Comp,Notes,mag1,mag2,SpType\n" +
		"14396-6050,AB,O,0.14,1.24,G2V+K1V\n" +
		"14396-6050,C,,0.14,,\n"
	cat, err := Load(strings.NewReader(input), FormatCSV, "wds.csv")
	require.NoError(t, err)
	table, ok := cat.Lookup("14396-6050")
	require.True(t, ok)
	require.Len(t, table.Components, 2)
	assert.Equal(t, "G2V+K1V", table.Components[0].SpectralType)
	assert.True(t, math.IsNaN(table.Components[1].Mag2))
}

func TestParseCSVErrors(t *testing.T) {
	_, err := Load(strings.NewReader("Comp,Notes\nAB,O\n"), FormatCSV, "x.csv")
	assert.True(t, errors.IsParse(err))

	_, err = Load(strings.NewReader("WDS,mag1\n14396-6050,bright\n"), FormatCSV, "x.csv")
	assert.True(t, errors.IsParse(err))

	_, err = Load(strings.NewReader(""), FormatCSV, "x.csv")
	assert.True(t, errors.IsParse(err))
}

func TestParseYAML(t *testing.T) {
	list := `
- wds: 14396-6050
  comp: AB
  notes: O
  mag1: 0.14
  mag2: 1.24
- wds: 14396-6050
  comp: C
  mag1: 0.14
`
	cat, err := Load(strings.NewReader(list), FormatYAML, "wds.yaml")
	require.NoError(t, err)
	table, _ := cat.Lookup("14396-6050")
	require.Len(t, table.Components, 2)
	assert.InDelta(t, 1.24, table.Components[0].Mag2, 1e-9)
	assert.True(t, math.IsNaN(table.Components[1].Mag2))

	wrapped := `{"components": [{"wds": "00001+0001", "comp": "", "mag1": 5, "mag2": 6.5}]}`
	cat, err = Load(strings.NewReader(wrapped), FormatYAML, "wds.json")
	require.NoError(t, err)
	pair, ok := cat.Lookup("00001+0001")
	require.True(t, ok)
	assert.InDelta(t, 1.5, pair.Components[0].MagDiff(), 1e-9)

	_, err = Load(strings.NewReader("- wds: nope\n"), FormatYAML, "wds.yaml")
	assert.True(t, errors.IsParse(err))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wds.dat")
	require.NoError(t, os.WriteFile(path, []byte(fixedLine("14396-6050", "AB", "0.14", "1.24", "O")+"\n"), 0o600))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.dat"))
	assert.True(t, errors.IsIO(err))
	assert.False(t, errors.IsParse(err))

	_, err = LoadFile(filepath.Join(dir, "catalog.fits"))
	assert.True(t, errors.IsValidationError(err))
}

func TestRepairLine(t *testing.T) {
	good := strings.Repeat("x", 130)
	fixed, ok := RepairLine(good)
	assert.True(t, ok)
	assert.Equal(t, good, fixed)

	fixed, ok = RepairLine(strings.Repeat("x", 126) + "08.")
	assert.True(t, ok)
	assert.True(t, strings.HasSuffix(fixed, "08.0"))
	assert.Len(t, fixed, 130)

	fixed, ok = RepairLine(strings.Repeat("x", 126))
	assert.True(t, ok)
	assert.True(t, strings.HasSuffix(fixed, "0.00"))
	assert.Len(t, fixed, 130)

	_, ok = RepairLine("short")
	assert.False(t, ok)
}

func TestClean(t *testing.T) {
	good := fixedLine("14396-6050", "AB", "0.14", "1.24", "O")
	input := strings.Join([]string{good, good[:129], good[:126], "garbage"}, "\n") + "\n"

	var out bytes.Buffer
	stats, err := Clean(strings.NewReader(input), &out)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Read)
	assert.Equal(t, 3, stats.Bad)
	assert.Equal(t, 2, stats.Fixed)
	assert.Equal(t, 3, stats.Written)
	require.Len(t, stats.Rejected, 1)
	assert.Equal(t, 4, stats.Rejected[0].Line)

	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		assert.Len(t, line, 130)
	}
}
