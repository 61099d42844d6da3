package wds

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/errors"
)

// column is a 0-based, end-exclusive byte range of the WDS ASCII layout.
type column struct{ start, end int }

// Byte ranges of the WDS ASCII catalog (wds.dat / wdsweb_summ.txt).
var (
	colID     = column{0, 10}
	colDisc   = column{10, 17}
	colComp   = column{17, 22}
	colDate1  = column{23, 27}
	colDate2  = column{28, 32}
	colNobs   = column{33, 37}
	colPA1    = column{38, 41}
	colPA2    = column{42, 45}
	colSep1   = column{46, 51}
	colSep2   = column{52, 57}
	colMag1   = column{58, 63}
	colMag2   = column{64, 69}
	colSpType = column{70, 79}
	colPMRA1  = column{80, 84}
	colPMDE1  = column{84, 88}
	colPMRA2  = column{89, 93}
	colPMDE2  = column{93, 97}
	colDM     = column{98, 106}
	colNotes  = column{107, 111}
	colCoords = column{112, constants.FixedWidthLineLength}
)

// minRecordLength covers everything the filter reads.
const minRecordLength = 69

func (c column) slice(line string) string {
	if c.start >= len(line) {
		return ""
	}
	end := min(c.end, len(line))
	return strings.TrimSpace(line[c.start:end])
}

// ParseFixedWidth reads the WDS ASCII layout. Blank lines are skipped; a
// line too short to hold the magnitudes is a ParseError. An unreadable
// stream is an IOError.
func ParseFixedWidth(r io.Reader, name string) (*Catalog, error) {
	cat := NewCatalog()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		comp, err := parseFixedWidthLine(line)
		if err != nil {
			return nil, &errors.ParseError{Format: "wds", File: name, Line: lineNo, Message: err.Error(), Err: err}
		}
		cat.Add(comp)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIOError("read", name, err)
	}
	return cat, nil
}

func parseFixedWidthLine(line string) (Component, error) {
	if len(line) < minRecordLength {
		return Component{}, fmt.Errorf("record is %d characters, need at least %d", len(line), minRecordLength)
	}
	id, err := ParseSystemID(colID.slice(line))
	if err != nil {
		return Component{}, err
	}
	return Component{
		System:       id,
		Discoverer:   colDisc.slice(line),
		Label:        colComp.slice(line),
		FirstEpoch:   atoi(colDate1.slice(line)),
		LastEpoch:    atoi(colDate2.slice(line)),
		Observations: atoi(colNobs.slice(line)),
		FirstPA:      atof(colPA1.slice(line), 0),
		LastPA:       atof(colPA2.slice(line), 0),
		FirstSep:     atof(colSep1.slice(line), 0),
		LastSep:      atof(colSep2.slice(line), 0),
		Mag1:         atof(colMag1.slice(line), math.NaN()),
		Mag2:         atof(colMag2.slice(line), math.NaN()),
		SpectralType: colSpType.slice(line),
		PMRA1:        atoi(colPMRA1.slice(line)),
		PMDec1:       atoi(colPMDE1.slice(line)),
		PMRA2:        atoi(colPMRA2.slice(line)),
		PMDec2:       atoi(colPMDE2.slice(line)),
		DM:           colDM.slice(line),
		Notes:        colNotes.slice(line),
		Coordinates:  colCoords.slice(line),
	}, nil
}

// atoi returns 0 for blank or malformed numbers. Only magnitudes take part
// in filtering; the other numeric columns are informational.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		return 0
	}
	return n
}

func atof(s string, missing float64) float64 {
	if s == "" || s == "." {
		return missing
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return missing
	}
	return f
}
