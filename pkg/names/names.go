// Package names cleans user-supplied star names into identifiers the Simbad
// name resolver accepts.
package names

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/runenames"
)

var parenthetical = regexp.MustCompile(`\(.*?\)`)

// replacements covers characters the resolver rejects that are not Greek.
var replacements = map[rune]string{
	'’': "'", // right single quotation mark
}

var titler = cases.Title(language.English)

// Normalize prepares a name copied from a web table: parenthesised
// asides are dropped, line breaks are folded into single spaces, Greek
// letters are spelled out and awkward punctuation is replaced.
//
//	"γ And\n   (Almach)" -> "gamma And"
func Normalize(name string) string {
	name = parenthetical.ReplaceAllString(name, "")

	lines := strings.Split(strings.ReplaceAll(name, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	name = strings.Join(lines, " ")

	var b strings.Builder
	for _, r := range name {
		if s, ok := Greek(r); ok {
			b.WriteString(s)
			continue
		}
		if s, ok := replacements[r]; ok {
			b.WriteString(s)
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// Greek spells out a Greek letter using its Unicode name: lower case for
// small letters, title case for capitals. Accented forms and final sigma
// are left alone.
func Greek(r rune) (string, bool) {
	capital := r >= 'Α' && r <= 'Ω' && r != 0x03A2
	small := r >= 'α' && r <= 'ω' && r != 'ς'
	if !capital && !small {
		return "", false
	}
	fields := strings.Fields(runenames.Name(r))
	if len(fields) == 0 {
		return "", false
	}
	letter := strings.ToLower(fields[len(fields)-1])
	if capital {
		return titler.String(letter), true
	}
	return letter, true
}

// CleanMainID removes the "NAME " prefix Simbad puts in front of proper
// names, e.g. "NAME Barnard's Star".
func CleanMainID(id string) string {
	return strings.TrimSpace(strings.Replace(id, "NAME ", "", 1))
}
