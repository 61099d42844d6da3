package wds

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/wdsquery/pkg/errors"
)

// Format is an on-disk representation of the catalog.
type Format string

// Supported formats.
const (
	FormatFixedWidth Format = "wds"
	FormatCSV        Format = "csv"
	FormatYAML       Format = "yaml"
)

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dat", ".txt":
		return FormatFixedWidth, nil
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	default:
		return "", errors.NewValidationError("wds_file", path, "unsupported extension, use .dat, .txt, .csv, .yaml, .yml or .json")
	}
}

// LoadFile reads a catalog from disk. Failure to open or read the file is
// an IOError; content that cannot be interpreted is a ParseError.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // user-supplied catalog path
	if err != nil {
		return nil, errors.NewIOError("open", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f, format, path)
}

// Load reads a catalog in the given format. name is used in errors.
func Load(r io.Reader, format Format, name string) (*Catalog, error) {
	switch format {
	case FormatFixedWidth:
		return ParseFixedWidth(r, name)
	case FormatCSV:
		return parseCSV(r, name)
	case FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.NewIOError("read", name, err)
		}
		return parseYAML(data, name)
	default:
		return nil, errors.NewValidationError("format", string(format), "unknown catalog format")
	}
}

// csvColumns maps lower-cased header names to setters.
var csvColumns = map[string]func(*Component, string) error{
	"wds": func(c *Component, s string) error {
		id, err := ParseSystemID(s)
		c.System = id
		return err
	},
	"disc":   func(c *Component, s string) error { c.Discoverer = s; return nil },
	"comp":   func(c *Component, s string) error { c.Label = s; return nil },
	"obs1":   func(c *Component, s string) error { c.FirstEpoch = atoi(s); return nil },
	"obs2":   func(c *Component, s string) error { c.LastEpoch = atoi(s); return nil },
	"nobs":   func(c *Component, s string) error { c.Observations = atoi(s); return nil },
	"pa1":    func(c *Component, s string) error { c.FirstPA = atof(s, 0); return nil },
	"pa2":    func(c *Component, s string) error { c.LastPA = atof(s, 0); return nil },
	"sep1":   func(c *Component, s string) error { c.FirstSep = atof(s, 0); return nil },
	"sep2":   func(c *Component, s string) error { c.LastSep = atof(s, 0); return nil },
	"mag1":   func(c *Component, s string) error { return setMag(&c.Mag1, s) },
	"mag2":   func(c *Component, s string) error { return setMag(&c.Mag2, s) },
	"sptype": func(c *Component, s string) error { c.SpectralType = s; return nil },
	"dm":     func(c *Component, s string) error { c.DM = s; return nil },
	"notes":  func(c *Component, s string) error { c.Notes = s; return nil },
	"coord":  func(c *Component, s string) error { c.Coordinates = s; return nil },
}

func setMag(dst *float64, s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*dst = math.NaN()
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("magnitude %q: %w", s, err)
	}
	*dst = f
	return nil
}

func parseCSV(r io.Reader, name string) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewParseError("csv", name, "empty file", nil)
	}
	if err != nil {
		return nil, errors.WrapParse("csv", name, err)
	}

	setters := make([]func(*Component, string) error, len(header))
	hasID := false
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		setters[i] = csvColumns[key]
		if key == "wds" {
			hasID = true
		}
	}
	if !hasID {
		return nil, errors.NewParseError("csv", name, "missing WDS column", nil)
	}

	cat := NewCatalog()
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &errors.ParseError{Format: "csv", File: name, Line: line, Message: err.Error(), Err: err}
		}
		comp := Component{Mag1: math.NaN(), Mag2: math.NaN()}
		for i, field := range record {
			if i >= len(setters) || setters[i] == nil {
				continue
			}
			if err := setters[i](&comp, strings.TrimSpace(field)); err != nil {
				return nil, &errors.ParseError{Format: "csv", File: name, Line: line, Message: err.Error(), Err: err}
			}
		}
		cat.Add(comp)
	}
	return cat, nil
}

type yamlFile struct {
	Components []Component `yaml:"components"`
}

// parseYAML accepts either a bare list of components or a mapping with a
// components key. JSON input is valid YAML and goes through the same path.
func parseYAML(data []byte, name string) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", name, err)
	}

	var (
		rows []Component
		raw  []any
	)
	switch d := doc.(type) {
	case nil:
		return NewCatalog(), nil
	case []any:
		raw = d
		if err := yaml.Unmarshal(data, &rows); err != nil {
			return nil, errors.WrapParse("yaml", name, err)
		}
	case map[string]any:
		raw, _ = d["components"].([]any)
		var file yamlFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.WrapParse("yaml", name, err)
		}
		rows = file.Components
	default:
		return nil, errors.NewParseError("yaml", name, "expected a list of components", nil)
	}

	cat := NewCatalog()
	for i, comp := range rows {
		id, err := ParseSystemID(string(comp.System))
		if err != nil {
			return nil, errors.NewParseError("yaml", name, fmt.Sprintf("component %d: %v", i+1, err), err)
		}
		comp.System = id
		// An absent magnitude is unknown, not zero.
		if i < len(raw) {
			fields, _ := raw[i].(map[string]any)
			if fields["mag1"] == nil {
				comp.Mag1 = math.NaN()
			}
			if fields["mag2"] == nil {
				comp.Mag2 = math.NaN()
			}
		}
		cat.Add(comp)
	}
	return cat, nil
}
