// Package starlist reads lists of star names from CSV, plain text and HTML
// tables.
package starlist

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/agentstation/wdsquery/pkg/errors"
)

// Table is a list of named columns read from a file.
type Table struct {
	Source  string
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the values of the named column. A missing column is a
// validation error that suggests the first column instead.
func (t *Table) Column(name string) ([]string, error) {
	idx := slices.Index(t.Columns, name)
	if idx < 0 {
		msg := fmt.Sprintf("column %q not found in %s", name, t.Source)
		if len(t.Columns) > 0 {
			msg += fmt.Sprintf("; did you mean %q? Use --col to select the name column", t.Columns[0])
		}
		return nil, errors.NewValidationError("column", name, msg)
	}

	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}

// Read returns the column values of the table in path.
func Read(path, column string) ([]string, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	return t.Column(column)
}

// ReadTable reads path, choosing the format from its extension: .csv and
// .txt are comma separated, .html and .htm use the first <table>.
func ReadTable(path string) (*Table, error) {
	var read func(io.Reader, string) (*Table, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		read = ReadCSV
	case ".html", ".htm":
		read = ReadHTML
	default:
		return nil, errors.NewValidationError("input", path, "expected a .csv, .txt, .html or .htm file")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()
	return read(f, path)
}

// ReadCSV reads a comma separated list. Lines starting with # are comments;
// the first remaining line holds the column names.
func ReadCSV(r io.Reader, name string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			pe := errors.NewParseError("csv", name, perr.Err.Error(), err)
			pe.Line = perr.Line
			return nil, pe
		}
		return nil, errors.WrapIO("read", name, err)
	}
	if len(records) == 0 {
		return nil, errors.NewParseError("csv", name, "no header row", nil)
	}
	return newTable(name, records), nil
}

// Expand resolves glob patterns, including **, into a sorted list of
// files. A pattern without glob characters is returned as is.
func Expand(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			files = append(files, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.NewValidationError("input", pattern, "bad glob pattern: "+err.Error())
		}
		if len(matches) == 0 {
			return nil, errors.NewNotFoundError("input file", pattern)
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

func newTable(name string, records [][]string) *Table {
	t := &Table{Source: name}
	for _, h := range records[0] {
		t.Columns = append(t.Columns, strings.TrimSpace(h))
	}
	t.Rows = records[1:]
	return t
}
