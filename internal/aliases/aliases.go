// Package aliases maps user-supplied star names onto identifiers that the
// Simbad service recognises.
package aliases

import (
	"encoding/csv"
	"io"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/logging"
)

// Dictionary is an immutable alias table. The zero value resolves every
// name to itself.
type Dictionary struct {
	entries map[string]string
}

// New builds a dictionary from name/alias pairs.
func New(entries map[string]string) *Dictionary {
	d := &Dictionary{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		d.entries[k] = v
	}
	return d
}

// LoadFile reads an alias CSV. See Load.
func LoadFile(path string, logger *zerolog.Logger) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f, path, logger)
}

// Load reads alias rows from r. The first row is a header and is skipped.
// Rows with fewer than two fields are skipped with a warning; later rows
// override earlier ones.
func Load(r io.Reader, name string, logger *zerolog.Logger) (*Dictionary, error) {
	if logger == nil {
		logger = logging.Default()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	d := &Dictionary{entries: make(map[string]string)}
	for row := 0; ; row++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				pe := errors.NewParseError("csv", name, perr.Err.Error(), err)
				pe.Line = perr.Line
				return nil, pe
			}
			return nil, errors.WrapIO("read", name, err)
		}
		if row == 0 {
			continue
		}
		if len(rec) < 2 {
			logger.Warn().Str("file", name).Int("row", row+1).Msg("Alias row has fewer than two fields, skipping it")
			continue
		}
		d.entries[rec[0]] = rec[1]
	}

	logger.Debug().Str("file", name).Int("aliases", len(d.entries)).Msg("Loaded star aliases")
	return d, nil
}

// Resolve returns the alias for name, or name itself when none is known.
func (d *Dictionary) Resolve(name string) string {
	if d == nil {
		return name
	}
	if alias, ok := d.entries[name]; ok {
		return alias
	}
	return name
}

// Lookup reports the alias for name, if any.
func (d *Dictionary) Lookup(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	alias, ok := d.entries[name]
	return alias, ok
}

// Len returns the number of aliases.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Names returns the aliased names in sorted order.
func (d *Dictionary) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.entries))
	for k := range d.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
