// Package value provides a scalar that can be absent.
//
// Catalog text records leave many fields blank or marked with a
// placeholder. A Value keeps that "no data" state explicit instead of
// collapsing it into zero or the empty string.
package value

import (
	"encoding/json"
	"math"
	"strconv"
)

// NoDataText is how a missing value renders.
const NoDataText = "no data"

// Kind identifies what a Value holds.
type Kind uint8

// Value kinds.
const (
	KindNoData Kind = iota
	KindText
	KindNumber
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "nodata"
	}
}

// Value is a tagged scalar: no data, a string, or a float.
// The zero Value is NoData.
type Value struct {
	kind Kind
	text string
	num  float64
}

// NoData returns the missing value.
func NoData() Value { return Value{} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number wraps a float.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// NaN is the numeric stand-in for a numeric field with no usable data.
func NaN() Value { return Number(math.NaN()) }

// Kind reports what v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNoData reports whether v is missing.
func (v Value) IsNoData() bool { return v.kind == KindNoData }

// IsNumber reports whether v holds a float (possibly NaN).
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// IsNaN reports whether v is a NaN number.
func (v Value) IsNaN() bool { return v.kind == KindNumber && math.IsNaN(v.num) }

// Text returns the string held by v.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Float returns the number held by v.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// String renders v for display.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		if math.IsNaN(v.num) {
			return "NaN"
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return NoDataText
	}
}

// Equal compares two values. NaN numbers are equal to each other.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindNumber:
		if math.IsNaN(v.num) || math.IsNaN(o.num) {
			return math.IsNaN(v.num) && math.IsNaN(o.num)
		}
		return v.num == o.num
	default:
		return true
	}
}

// MarshalJSON encodes NoData as null. NaN has no JSON number form and is
// written as the string "NaN".
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return json.Marshal(v.String())
		}
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = NoData()
	case float64:
		*v = Number(t)
	case string:
		if t == "NaN" {
			*v = NaN()
		} else {
			*v = Text(t)
		}
	default:
		*v = Text(string(data))
	}
	return nil
}

// MarshalYAML encodes v for goccy/go-yaml.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindText:
		return v.text, nil
	case KindNumber:
		if math.IsNaN(v.num) {
			return ".nan", nil
		}
		return v.num, nil
	default:
		return nil, nil
	}
}
