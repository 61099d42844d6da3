package reconciler

import "strings"

// SplitterType names a label decomposition rule.
type SplitterType string

// String returns the string representation of a splitter type.
func (s SplitterType) String() string {
	return string(s)
}

const (
	// SplitterTypeSubComponent keeps spectroscopic sub-component labels
	// such as Aa,Ab whole; Simbad indexes them that way.
	SplitterTypeSubComponent SplitterType = "sub-component"
	// SplitterTypeCommaList splits A,BC into A and BC.
	SplitterTypeCommaList SplitterType = "comma-list"
	// SplitterTypeCharacter splits AB into A and B.
	SplitterTypeCharacter SplitterType = "character"
)

// Splitter decomposes a component label into identifier fragments.
// Splitters are consulted in order and the first match wins.
type Splitter interface {
	// Type returns the splitter type
	Type() SplitterType

	// Match reports whether this rule applies to label
	Match(label string) bool

	// Split returns the fragments of label
	Split(label string) []string
}

// DefaultSplitters returns the rules used by Simbad's WDS naming, in
// precedence order.
func DefaultSplitters() []Splitter {
	return []Splitter{
		subComponentSplitter{},
		commaListSplitter{},
		characterSplitter{},
	}
}

type subComponentSplitter struct{}

func (subComponentSplitter) Type() SplitterType          { return SplitterTypeSubComponent }
func (subComponentSplitter) Match(label string) bool     { return strings.Contains(label, "a,") }
func (subComponentSplitter) Split(label string) []string { return []string{label} }

type commaListSplitter struct{}

func (commaListSplitter) Type() SplitterType      { return SplitterTypeCommaList }
func (commaListSplitter) Match(label string) bool { return strings.Contains(label, ",") }
func (commaListSplitter) Split(label string) []string {
	return strings.Split(label, ",")
}

type characterSplitter struct{}

func (characterSplitter) Type() SplitterType { return SplitterTypeCharacter }
func (characterSplitter) Match(string) bool  { return true }
func (characterSplitter) Split(label string) []string {
	frags := make([]string, 0, len(label))
	for _, r := range label {
		frags = append(frags, string(r))
	}
	return frags
}
