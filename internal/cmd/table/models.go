// Package table converts query results into rows for table output.
package table

import (
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/wdsquery"
	"github.com/agentstation/wdsquery/pkg/simbad"
	"github.com/agentstation/wdsquery/pkg/value"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ComponentsToTableData converts the components of a system to table format.
func ComponentsToTableData(t *wds.Table, wide bool) Data {
	headers := []string{"WDS", "Comp", "Mag1", "Mag2", "ΔMag", "Notes"}
	align := []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignLeft}
	if wide {
		headers = append(headers, "Disc", "Epochs", "Sep", "Sp Type")
		align = append(align, AlignLeft, AlignLeft, AlignRight, AlignLeft)
	}

	var rows [][]string
	if t != nil {
		rows = make([][]string, 0, t.Len())
		for _, c := range t.Components {
			row := []string{
				c.System.String(),
				c.EffectiveLabel(),
				FormatMag(c.Mag1),
				FormatMag(c.Mag2),
				FormatMag(c.MagDiff()),
				dash(strings.TrimSpace(c.Notes)),
			}
			if wide {
				row = append(row,
					dash(c.Discoverer),
					FormatEpochs(c.FirstEpoch, c.LastEpoch),
					FormatMag(c.LastSep),
					dash(c.SpectralType),
				)
			}
			rows = append(rows, row)
		}
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// IDsToTableData lists canonical Simbad identifiers.
func IDsToTableData(ids []string) Data {
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		sys, _ := wds.SystemIDFromSimbad(id)
		rows = append(rows, []string{id, sys.String()})
	}
	return Data{Headers: []string{"Simbad ID", "WDS"}, Rows: rows}
}

// RecordsToTableData converts parsed Simbad records to table format.
func RecordsToTableData(results []wdsquery.Result, wide bool) Data {
	headers := []string{"Name", "Main ID", "WDS", "RA", "Dec", "V", "Sp Type"}
	if wide {
		headers = append(headers, "B", "Plx", "PM", "HD", "HIP", "SAO", "Bibcode")
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rec := r.Record
		if rec == nil {
			continue
		}
		m := rec.Measurements
		row := []string{
			r.Name,
			FormatValue(rec.Identifiers.Get(simbad.MainID)),
			FormatValue(r.System),
			FormatValue(rec.Coordinates.RA),
			FormatValue(rec.Coordinates.Dec),
			FormatValue(m.Get(simbad.FieldMagV).Value),
			FormatValue(m.Get(simbad.FieldSpectralType).Value),
		}
		if wide {
			row = append(row,
				FormatValue(m.Get(simbad.FieldMagB).Value),
				FormatValue(m.Get(simbad.FieldParallax).Value),
				FormatValue(m.Get(simbad.FieldProperMotion).Value),
				FormatValue(rec.Identifiers.Get(simbad.CatalogHD)),
				FormatValue(rec.Identifiers.Get(simbad.CatalogHIP)),
				FormatValue(rec.Identifiers.Get(simbad.CatalogSAO)),
				FormatValue(rec.Coordinates.Bibcode),
			)
		}
		rows = append(rows, row)
	}
	return Data{Headers: headers, Rows: rows}
}

// DecodedToTableData pairs Simbad WDS identifiers with their system ids.
func DecodedToTableData(inputs []string, decoded []value.Value) Data {
	rows := make([][]string, 0, len(inputs))
	for i, in := range inputs {
		rows = append(rows, []string{in, FormatValue(decoded[i])})
	}
	return Data{Headers: []string{"Identifier", "WDS"}, Rows: rows}
}

// FormatValue renders a value for a table cell. Missing data is shown
// as "-".
func FormatValue(v value.Value) string {
	if v.IsNoData() || v.IsNaN() {
		return "-"
	}
	return v.String()
}

// FormatMag formats a magnitude to two decimals.
func FormatMag(m float64) string {
	if math.IsNaN(m) {
		return "-"
	}
	return strconv.FormatFloat(m, 'f', 2, 64)
}

// FormatEpochs formats an observation span such as 1826-2019.
func FormatEpochs(first, last int) string {
	switch {
	case first == 0 && last == 0:
		return "-"
	case first == last || last == 0:
		return strconv.Itoa(first)
	default:
		return strconv.Itoa(first) + "-" + strconv.Itoa(last)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
