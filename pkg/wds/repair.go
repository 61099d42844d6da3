package wds

import (
	"bufio"
	"io"
	"strings"

	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/errors"
)

// Known truncations of the declination-seconds field at the end of a
// record. One character short means "xx." lost its tenths; four short means
// the field lost its digits.
const (
	shortByOne  = constants.FixedWidthLineLength - 1
	shortByFour = constants.FixedWidthLineLength - 4
)

// RepairLine fixes a WDS ASCII record (without its newline) whose last
// field was truncated. ok is false when the length is not one it knows how
// to fix; the line is then returned unchanged.
func RepairLine(line string) (fixed string, ok bool) {
	switch len(line) {
	case constants.FixedWidthLineLength:
		return line, true
	case shortByOne:
		return line + "0", true
	case shortByFour:
		return line + "0.00", true
	default:
		return line, false
	}
}

// BadLine is a record Clean could not repair.
type BadLine struct {
	Line   int    `json:"line"`
	Length int    `json:"length"`
	Text   string `json:"text"`
}

// CleanStats summarises a Clean run.
type CleanStats struct {
	Read     int       `json:"read"`
	Written  int       `json:"written"`
	Bad      int       `json:"bad"`
	Fixed    int       `json:"fixed"`
	Rejected []BadLine `json:"rejected,omitempty"`
}

// Clean copies a WDS ASCII file from r to w, repairing truncated records
// and dropping the ones it cannot repair.
func Clean(r io.Reader, w io.Writer) (CleanStats, error) {
	var stats CleanStats
	scanner := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	for scanner.Scan() {
		stats.Read++
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) != constants.FixedWidthLineLength {
			stats.Bad++
		}
		fixed, ok := RepairLine(line)
		if !ok {
			stats.Rejected = append(stats.Rejected, BadLine{Line: stats.Read, Length: len(line), Text: line})
			continue
		}
		if len(line) != constants.FixedWidthLineLength {
			stats.Fixed++
		}
		if _, err := bw.WriteString(fixed + "\n"); err != nil {
			return stats, errors.NewIOError("write", "", err)
		}
		stats.Written++
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.NewIOError("read", "", err)
	}
	if err := bw.Flush(); err != nil {
		return stats, errors.NewIOError("write", "", err)
	}
	return stats, nil
}
