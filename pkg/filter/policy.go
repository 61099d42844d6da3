package filter

import (
	"fmt"
	"strings"

	"github.com/agentstation/wdsquery/pkg/errors"
)

// Policy selects which components of a system are kept.
type Policy int

const (
	// PolicyNegative removes spectroscopic sub-components, components
	// flagged as non-physical and companions too faint to observe.
	PolicyNegative Policy = iota
	// PolicyPositive keeps only components with evidence of a physical
	// association.
	PolicyPositive
	// PolicyABC keeps components whose label pairs A, B or C.
	PolicyABC
)

// String returns the policy name as accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case PolicyNegative:
		return "negative"
	case PolicyPositive:
		return "positive"
	case PolicyABC:
		return "abc"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	return p >= PolicyNegative && p <= PolicyABC
}

// Policies lists the defined policies.
func Policies() []Policy {
	return []Policy{PolicyNegative, PolicyPositive, PolicyABC}
}

// ParsePolicy maps a policy name to a Policy. Matching is exact apart from
// case and surrounding space; an empty name selects PolicyNegative.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "negative":
		return PolicyNegative, nil
	case "positive":
		return PolicyPositive, nil
	case "abc":
		return PolicyABC, nil
	default:
		return PolicyNegative, errors.NewUnknownPolicyError(s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
