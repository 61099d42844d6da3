package simbad

import (
	"encoding/json"

	"github.com/agentstation/wdsquery/pkg/value"
)

// Coordinates is the ICRS position block of a record.
type Coordinates struct {
	RA      value.Value `json:"ra" yaml:"ra"`
	Dec     value.Value `json:"dec" yaml:"dec"`
	RADeg   value.Value `json:"ra_deg" yaml:"ra_deg"`
	DecDeg  value.Value `json:"dec_deg" yaml:"dec_deg"`
	Bibcode value.Value `json:"bibcode" yaml:"bibcode"`
}

// Measurement is a value with its uncertainty and bibliographic source.
type Measurement struct {
	Value     value.Value `json:"value" yaml:"value"`
	Error     value.Value `json:"error" yaml:"error"`
	Reference value.Value `json:"reference" yaml:"reference"`
}

// Measurements holds one Measurement per Field.
type Measurements [numFields]Measurement

// Get returns the measurement for f.
func (m Measurements) Get(f Field) Measurement {
	if f < 0 || f >= numFields {
		return Measurement{}
	}
	return m[f]
}

func (m Measurements) asMap() map[string]Measurement {
	out := make(map[string]Measurement, numFields)
	for _, f := range Fields() {
		out[f.String()] = m[f]
	}
	return out
}

// MarshalJSON encodes the measurements keyed by field name.
func (m Measurements) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.asMap())
}

// MarshalYAML encodes the measurements keyed by field name.
func (m Measurements) MarshalYAML() (any, error) {
	return m.asMap(), nil
}

// Identifiers holds one identifier per Catalog.
type Identifiers [numCatalogs]value.Value

// Get returns the identifier for c.
func (ids Identifiers) Get(c Catalog) value.Value {
	if c < 0 || c >= numCatalogs {
		return value.NoData()
	}
	return ids[c]
}

func (ids Identifiers) asMap() map[string]value.Value {
	out := make(map[string]value.Value, numCatalogs)
	for _, c := range Catalogs() {
		out[c.String()] = ids[c]
	}
	return out
}

// MarshalJSON encodes the identifiers keyed by catalog name.
func (ids Identifiers) MarshalJSON() ([]byte, error) {
	return json.Marshal(ids.asMap())
}

// MarshalYAML encodes the identifiers keyed by catalog name.
func (ids Identifiers) MarshalYAML() (any, error) {
	return ids.asMap(), nil
}

// Record is the structured content of one Simbad identifier response.
type Record struct {
	Coordinates  Coordinates  `json:"coordinates" yaml:"coordinates"`
	Measurements Measurements `json:"measurements" yaml:"measurements"`
	Identifiers  Identifiers  `json:"identifiers" yaml:"identifiers"`

	// Issues lists the markers that were missing from the text. They do
	// not stop parsing; the affected fields are no data.
	Issues []error `json:"-" yaml:"-"`
}

// IsEmpty reports whether nothing at all was extracted, which is what a
// Simbad error page or an unknown identifier produces.
func (r *Record) IsEmpty() bool {
	if r == nil {
		return true
	}
	c := r.Coordinates
	for _, v := range []value.Value{c.RA, c.Dec, c.RADeg, c.DecDeg, c.Bibcode} {
		if hasData(v) {
			return false
		}
	}
	for _, m := range r.Measurements {
		if hasData(m.Value) || hasData(m.Error) || hasData(m.Reference) {
			return false
		}
	}
	for _, id := range r.Identifiers {
		if hasData(id) {
			return false
		}
	}
	return true
}

func hasData(v value.Value) bool {
	return !v.IsNoData() && !v.IsNaN()
}
