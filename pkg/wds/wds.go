// Package wds models the Washington Double Star catalog: systems keyed by a
// position-derived id, each holding one or more component rows.
package wds

import (
	"encoding/json"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/errors"
)

var systemIDPattern = regexp.MustCompile(`^\d{5}[+-]\d{4}$`)

// SystemID is a bare WDS identifier such as 14396-6050.
type SystemID string

// ParseSystemID trims and validates s.
func ParseSystemID(s string) (SystemID, error) {
	s = strings.TrimSpace(s)
	if !systemIDPattern.MatchString(s) {
		return "", errors.NewValidationError("wds_id", s, "expected RRRRR+DDDD or RRRRR-DDDD")
	}
	return SystemID(s), nil
}

// String returns the id.
func (id SystemID) String() string { return string(id) }

// Component is one row of the WDS catalog.
type Component struct {
	System       SystemID `json:"wds" yaml:"wds"`
	Discoverer   string   `json:"discoverer,omitempty" yaml:"discoverer,omitempty"`
	Label        string   `json:"comp" yaml:"comp"`
	FirstEpoch   int      `json:"first_epoch,omitempty" yaml:"first_epoch,omitempty"`
	LastEpoch    int      `json:"last_epoch,omitempty" yaml:"last_epoch,omitempty"`
	Observations int      `json:"nobs,omitempty" yaml:"nobs,omitempty"`
	FirstPA      float64  `json:"pa1,omitempty" yaml:"pa1,omitempty"`
	LastPA       float64  `json:"pa2,omitempty" yaml:"pa2,omitempty"`
	FirstSep     float64  `json:"sep1,omitempty" yaml:"sep1,omitempty"`
	LastSep      float64  `json:"sep2,omitempty" yaml:"sep2,omitempty"`
	Mag1         float64  `json:"mag1" yaml:"mag1"`
	Mag2         float64  `json:"mag2" yaml:"mag2"`
	SpectralType string   `json:"sp_type,omitempty" yaml:"sp_type,omitempty"`
	PMRA1        int      `json:"pm_ra1,omitempty" yaml:"pm_ra1,omitempty"`
	PMDec1       int      `json:"pm_de1,omitempty" yaml:"pm_de1,omitempty"`
	PMRA2        int      `json:"pm_ra2,omitempty" yaml:"pm_ra2,omitempty"`
	PMDec2       int      `json:"pm_de2,omitempty" yaml:"pm_de2,omitempty"`
	DM           string   `json:"dm,omitempty" yaml:"dm,omitempty"`
	Notes        string   `json:"notes" yaml:"notes"`
	Coordinates  string   `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
}

// EffectiveLabel returns the label with surrounding space removed. WDS
// leaves the label blank for simple pairs, which means AB.
func (c Component) EffectiveLabel() string {
	label := strings.TrimSpace(c.Label)
	if label == "" {
		return constants.ImpliedLabel
	}
	return label
}

// MagDiff returns Mag2 - Mag1. It is NaN when either magnitude is unknown.
func (c Component) MagDiff() float64 {
	if math.IsNaN(c.Mag1) || math.IsNaN(c.Mag2) {
		return math.NaN()
	}
	return c.Mag2 - c.Mag1
}

// MarshalJSON encodes unknown magnitudes as null, since JSON has no NaN.
func (c Component) MarshalJSON() ([]byte, error) {
	type plain Component
	return json.Marshal(struct {
		plain
		Mag1 *float64 `json:"mag1"`
		Mag2 *float64 `json:"mag2"`
	}{plain(c), magnitude(c.Mag1), magnitude(c.Mag2)})
}

func magnitude(m float64) *float64 {
	if math.IsNaN(m) {
		return nil
	}
	return &m
}

// Table is the ordered set of components of one system.
type Table struct {
	System     SystemID    `json:"wds" yaml:"wds"`
	Components []Component `json:"components" yaml:"components"`
}

// Len returns the number of components. A nil table has none.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Components)
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	return &Table{System: t.System, Components: slices.Clone(t.Components)}
}

// SortByLabel orders the components by raw label, keeping the catalog
// order of equal labels.
func (t *Table) SortByLabel() {
	slices.SortStableFunc(t.Components, func(a, b Component) int {
		return strings.Compare(a.Label, b.Label)
	})
}

// Remove drops every component for which drop returns true and reports how
// many were removed.
func (t *Table) Remove(drop func(Component) bool) int {
	before := len(t.Components)
	t.Components = slices.DeleteFunc(t.Components, drop)
	return before - len(t.Components)
}

// Labels returns the raw component labels in table order.
func (t *Table) Labels() []string {
	if t == nil {
		return nil
	}
	labels := make([]string, len(t.Components))
	for i, c := range t.Components {
		labels[i] = c.Label
	}
	return labels
}

// Catalog indexes components by system id. It is read-only once loaded
// and safe to share between goroutines after that.
type Catalog struct {
	rows  map[SystemID][]Component
	order []SystemID
}

// NewCatalog builds a catalog from rows in catalog order.
func NewCatalog(components ...Component) *Catalog {
	c := &Catalog{rows: make(map[SystemID][]Component)}
	for _, comp := range components {
		c.Add(comp)
	}
	return c
}

// Add appends a component to its system.
func (c *Catalog) Add(comp Component) {
	if c.rows == nil {
		c.rows = make(map[SystemID][]Component)
	}
	if _, ok := c.rows[comp.System]; !ok {
		c.order = append(c.order, comp.System)
	}
	c.rows[comp.System] = append(c.rows[comp.System], comp)
}

// Lookup returns a copy of the rows for id. The second result is false
// when the catalog has no such system.
func (c *Catalog) Lookup(id SystemID) (*Table, bool) {
	if c == nil {
		return nil, false
	}
	rows, ok := c.rows[id]
	if !ok {
		return nil, false
	}
	return &Table{System: id, Components: slices.Clone(rows)}, true
}

// Systems returns the system ids in load order.
func (c *Catalog) Systems() []SystemID {
	if c == nil {
		return nil
	}
	return slices.Clone(c.order)
}

// Len returns the number of systems.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Components returns the total number of rows.
func (c *Catalog) Components() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, rows := range c.rows {
		n += len(rows)
	}
	return n
}
