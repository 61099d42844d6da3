package starlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wdsquery/pkg/errors"
)

const starsHTML = `<html><body>
<p>Double stars for small telescopes</p>
<table>
  <thead><tr><th>Star</th><th> Con </th><th>Sep</th></tr></thead>
  <tbody>
    <tr><td>γ And<br>
        (Almach)</td><td>And</td><td>9.6</td></tr>
    <tr><td><a href="#">β Cyg</a></td><td>Cyg</td></tr>
  </tbody>
</table>
<table><tr><th>Other</th></tr></table>
</body></html>`

func TestReadHTML(t *testing.T) {
	tbl, err := ReadHTML(strings.NewReader(starsHTML), "stars.html")
	require.NoError(t, err)

	assert.Equal(t, []string{"Star", "Con", "Sep"}, tbl.Columns)
	assert.Equal(t, 2, tbl.Len())

	stars, err := tbl.Column("Star")
	require.NoError(t, err)
	require.Len(t, stars, 2)
	assert.True(t, strings.HasPrefix(stars[0], "γ And\n"))
	assert.True(t, strings.HasSuffix(stars[0], "(Almach)"))
	assert.Equal(t, "β Cyg", stars[1])

	seps, err := tbl.Column("Sep")
	require.NoError(t, err)
	assert.Equal(t, []string{"9.6", ""}, seps)
}

func TestReadHTMLWithoutTable(t *testing.T) {
	_, err := ReadHTML(strings.NewReader("<p>nothing</p>"), "empty.html")
	assert.True(t, errors.IsParse(err))
}

func TestReadCSV(t *testing.T) {
	in := "# observing list\nStar, Notes\nalf Cen,bright\n\"gam And\", \"wide, colourful\"\n"
	tbl, err := ReadCSV(strings.NewReader(in), "list.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"Star", "Notes"}, tbl.Columns)
	stars, err := tbl.Column("Star")
	require.NoError(t, err)
	assert.Equal(t, []string{"alf Cen", "gam And"}, stars)

	notes, err := tbl.Column("Notes")
	require.NoError(t, err)
	assert.Equal(t, "wide, colourful", notes[1])

	_, err = ReadCSV(strings.NewReader(""), "empty.csv")
	assert.True(t, errors.IsParse(err))
}

func TestMissingColumnSuggestsFirst(t *testing.T) {
	tbl := &Table{Source: "list.csv", Columns: []string{"Name", "Mag"}}
	_, err := tbl.Column("Star")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), `did you mean "Name"`)
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(csvPath, []byte("Star\nVega\nDeneb\n"), 0o644))
	htmlPath := filepath.Join(dir, "list.html")
	require.NoError(t, os.WriteFile(htmlPath, []byte(starsHTML), 0o644))

	stars, err := Read(csvPath, "Star")
	require.NoError(t, err)
	assert.Equal(t, []string{"Vega", "Deneb"}, stars)

	stars, err = Read(htmlPath, "Con")
	require.NoError(t, err)
	assert.Equal(t, []string{"And", "Cyg"}, stars)

	_, err = Read(filepath.Join(dir, "list.fits"), "Star")
	assert.True(t, errors.IsValidationError(err))

	_, err = Read(filepath.Join(dir, "missing.csv"), "Star")
	assert.True(t, errors.IsIO(err))
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"a.csv", "nested/b.csv", "nested/c.html"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("Star\n"), 0o644))
	}

	files, err := Expand([]string{filepath.Join(dir, "**", "*.csv"), filepath.Join(dir, "a.csv")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "nested", "b.csv")}, files)

	_, err = Expand([]string{filepath.Join(dir, "*.fits")})
	assert.True(t, errors.IsNotFound(err))
}
