// Package simbad parses the ASCII output of Simbad identifier queries into
// typed records.
//
// Simbad text is semi-structured: each datum sits on a line introduced by a
// marker such as "Parallax:" and its parts are found by whitespace token
// position. Anything absent, truncated or shown with the "~" placeholder
// becomes value.NoData. A numeric field whose line is present but whose
// text cannot be read becomes NaN; a field whose marker is on no line stays
// NoData. Parsing never fails as a whole.
package simbad

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/value"
)

// Text markers in Simbad ASCII output.
const (
	markerCoordinates = "Coordinates(ICRS"
	markerObject      = "Object "
	markerIdentifiers = "Identifiers"
	objectSeparator   = "---"
	placeholder       = "~"
)

// Token positions on the ICRS coordinates line.
var (
	coordinateSpan = Span{1, 7}
	coordinateRef  = 13
)

// AngleConverter turns sexagesimal text into degrees and back.
type AngleConverter interface {
	ToDegrees(s string) (ra, dec float64, err error)
	Format(ra, dec float64) (raStr, decStr string)
}

// Parser extracts Records from Simbad ASCII responses. It holds no per-call
// state and is safe for concurrent use.
type Parser struct {
	converter AngleConverter
	logger    *zerolog.Logger
}

// NewParser creates a Parser.
func NewParser(opts ...Option) (*Parser, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Parser{converter: options.converter, logger: options.logger}, nil
}

// SplitLines breaks a response body into lines without line terminators.
func SplitLines(data []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines
}

// Parse extracts coordinates, measurements and identifiers from lines.
func (p *Parser) Parse(lines []string) *Record {
	rec := &Record{}
	var issues []error
	rec.Coordinates, issues = p.parseCoordinates(lines)
	rec.Issues = append(rec.Issues, issues...)
	rec.Measurements, issues = p.parseMeasurements(lines)
	rec.Issues = append(rec.Issues, issues...)
	rec.Identifiers, issues = p.parseIdentifiers(lines)
	rec.Issues = append(rec.Issues, issues...)
	return rec
}

// ParseCoordinates reads the ICRS line. The display strings and degrees
// are filled only when the line carries a full position.
func (p *Parser) ParseCoordinates(lines []string) Coordinates {
	c, _ := p.parseCoordinates(lines)
	return c
}

func (p *Parser) parseCoordinates(lines []string) (Coordinates, []error) {
	c := Coordinates{}
	tokens, ok := findTokens(lines, markerCoordinates)
	if !ok {
		return c, []error{errors.NewMalformedTextError(markerCoordinates, "ra", "dec", "ra_deg", "dec_deg", "bibcode")}
	}

	if len(tokens) > coordinateSpan.End {
		pos := strings.Join(tokens[coordinateSpan.Start:coordinateSpan.End], " ")
		ra, dec, err := p.converter.ToDegrees(pos)
		if err != nil {
			p.logger.Warn().Err(err).Str("position", pos).Msg("Unreadable ICRS position")
		} else {
			raStr, decStr := p.converter.Format(ra, dec)
			c.RA, c.Dec = value.Text(raStr), value.Text(decStr)
			c.RADeg, c.DecDeg = value.Number(ra), value.Number(dec)
		}
	}
	c.Bibcode = token(tokens, coordinateRef)
	return c, nil
}

// ParseMeasurements reads every field in the field catalog.
func (p *Parser) ParseMeasurements(lines []string) Measurements {
	m, _ := p.parseMeasurements(lines)
	return m
}

func (p *Parser) parseMeasurements(lines []string) (Measurements, []error) {
	var (
		out    Measurements
		issues []error
	)
	for _, f := range Fields() {
		spec := f.Spec()
		tokens, ok := findTokens(lines, spec.Marker)
		if !ok {
			issues = append(issues, errors.NewMalformedTextError(spec.Marker, spec.Name))
			out[f] = Measurement{}
			continue
		}
		m := Measurement{
			Value:     span(tokens, spec.Value, false),
			Error:     span(tokens, spec.Error, true),
			Reference: token(tokens, spec.Reference),
		}
		if spec.Numeric {
			m.Value = p.number(spec.Name, m.Value)
			m.Error = p.number(spec.Name, m.Error)
		}
		out[f] = m
	}
	return out, issues
}

// number converts text to a float. No data and unreadable text are NaN.
func (p *Parser) number(field string, v value.Value) value.Value {
	s, ok := v.Text()
	if !ok {
		return value.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.logger.Debug().Str("field", field).Str("text", s).Msg("Non-numeric value in numeric field")
		return value.NaN()
	}
	return value.Number(f)
}

// ParseIdentifiers reads Simbad's main identifier and the identifiers of
// interest from the Identifiers section.
func (p *Parser) ParseIdentifiers(lines []string) Identifiers {
	ids, _ := p.parseIdentifiers(lines)
	return ids
}

func (p *Parser) parseIdentifiers(lines []string) (Identifiers, []error) {
	var (
		ids    Identifiers
		issues []error
	)

	ids[MainID] = mainID(lines)
	if ids[MainID].IsNoData() {
		issues = append(issues, errors.NewMalformedTextError(markerObject, MainID.String()))
	}

	start, end, ok := identifierSection(lines)
	if !ok {
		issues = append(issues, errors.NewMalformedTextError(markerIdentifiers))
		return ids, issues
	}

	for _, c := range Catalogs()[1:] {
		ids[c] = lookupIdentifier(lines[start:end], c.String())
	}
	return ids, issues
}

func mainID(lines []string) value.Value {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, markerObject) {
			continue
		}
		rest := strings.TrimPrefix(line, markerObject)
		id := strings.TrimSpace(strings.SplitN(rest, objectSeparator, 2)[0])
		if id == "" {
			return value.NoData()
		}
		return value.Text(id)
	}
	return value.NoData()
}

// identifierSection returns the lines between the Identifiers header and
// the row of "=" that closes it. ok is false when either is missing.
func identifierSection(lines []string) (start, end int, ok bool) {
	start = -1
	for i, line := range lines {
		if strings.Contains(line, markerIdentifiers) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	for i := start; i < len(lines); i++ {
		if isRule(lines[i]) {
			return start, i, true
		}
	}
	return 0, 0, false
}

func isRule(line string) bool {
	line = strings.TrimSpace(line)
	return line != "" && strings.Trim(line, "=") == ""
}

func lookupIdentifier(section []string, name string) value.Value {
	for _, line := range section {
		tokens := strings.Fields(line)
		for i, tok := range tokens {
			if tok != name {
				continue
			}
			if i+1 < len(tokens) {
				return value.Text(tokens[i+1])
			}
			return value.NoData()
		}
	}
	return value.NoData()
}

// findTokens splits the first line containing marker on whitespace.
func findTokens(lines []string, marker string) ([]string, bool) {
	for _, line := range lines {
		if strings.Contains(line, marker) {
			return strings.Fields(line), true
		}
	}
	return nil, false
}

// token returns tokens[i] unless it is out of range or a placeholder.
func token(tokens []string, i int) value.Value {
	if i < 0 || i >= len(tokens) {
		return value.NoData()
	}
	return text(tokens[i])
}

// span joins tokens[s.Start:s.End], clamped to the tokens present.
// Brackets are stripped from error spans before the placeholder check.
func span(tokens []string, s Span, brackets bool) value.Value {
	lo, hi := max(s.Start, 0), min(s.End, len(tokens))
	if lo >= hi {
		return value.NoData()
	}
	joined := strings.Join(tokens[lo:hi], " ")
	if brackets {
		joined = strings.Trim(joined, "[]")
	}
	return text(joined)
}

func text(s string) value.Value {
	if s == "" || strings.Contains(s, placeholder) {
		return value.NoData()
	}
	return value.Text(s)
}
