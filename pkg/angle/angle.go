// Package angle converts ICRS coordinates between sexagesimal text and
// decimal degrees.
package angle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/wdsquery/pkg/errors"
)

// DefaultPrecision is the number of decimals kept on the seconds field.
const DefaultPrecision = 1

// Converter parses "hh mm ss.s ±dd mm ss.s" into degrees and renders
// degrees back as colon separated text. The zero value uses
// DefaultPrecision.
type Converter struct {
	// Precision is the number of decimals on the seconds field.
	Precision int
}

// New returns a Converter with the default precision.
func New() *Converter {
	return &Converter{Precision: DefaultPrecision}
}

func (c *Converter) precision() int {
	if c == nil || c.Precision <= 0 {
		return DefaultPrecision
	}
	return c.Precision
}

// ToDegrees parses right ascension in hours and declination in degrees,
// both as three whitespace separated fields.
func (c *Converter) ToDegrees(s string) (ra, dec float64, err error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return 0, 0, parseError(s, fmt.Sprintf("expected 6 fields, got %d", len(fields)))
	}

	hours, err := sexagesimal(fields[0:3])
	if err != nil {
		return 0, 0, parseError(s, err.Error())
	}
	if hours < 0 || hours >= 24 {
		return 0, 0, parseError(s, "right ascension out of range")
	}

	degrees, err := sexagesimal(fields[3:6])
	if err != nil {
		return 0, 0, parseError(s, err.Error())
	}
	if math.Abs(degrees) > 90 {
		return 0, 0, parseError(s, "declination out of range")
	}
	return hours * 15, degrees, nil
}

// Format renders ra as hh:mm:ss.s and dec as dd:mm:ss.s. Only negative
// declinations carry a sign.
func (c *Converter) Format(ra, dec float64) (string, string) {
	p := c.precision()
	hours := math.Mod(ra/15, 24)
	if hours < 0 {
		hours += 24
	}
	return format(hours, p, 24), format(dec, p, 0)
}

// sexagesimal combines whole units, minutes and seconds. The sign is taken
// from the text of the first field so that -00 is negative.
func sexagesimal(fields []string) (float64, error) {
	var parts [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid field %q", f)
		}
		if i > 0 && (v < 0 || v >= 60) {
			return 0, fmt.Errorf("field %q out of range", f)
		}
		parts[i] = v
	}
	negative := strings.HasPrefix(fields[0], "-")
	total := math.Abs(parts[0]) + parts[1]/60 + parts[2]/3600
	if negative {
		total = -total
	}
	return total, nil
}

// format splits v into units, minutes and seconds rounded to p decimals,
// carrying into the larger fields. wrap > 0 folds the unit field.
func format(v float64, p, wrap int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	scale := math.Pow10(p)
	ticks := int64(math.Round(v * 3600 * scale))
	perMinute := int64(60 * scale)
	perUnit := 60 * perMinute

	units := ticks / perUnit
	minutes := (ticks % perUnit) / perMinute
	seconds := float64(ticks%perMinute) / scale
	if wrap > 0 {
		units %= int64(wrap)
	}
	if ticks == 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%d:%02d:%0*.*f", sign, units, minutes, p+3, p, seconds)
}

func parseError(s, msg string) error {
	return &errors.ParseError{Format: "sexagesimal", Message: fmt.Sprintf("%q: %s", s, msg)}
}
