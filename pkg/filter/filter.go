// Package filter selects the components of a WDS system worth querying,
// according to one of several mutually exclusive policies.
package filter

import (
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/reconciler"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// Source looks up the rows of one system. *wds.Catalog implements it.
type Source interface {
	Lookup(id wds.SystemID) (*wds.Table, bool)
}

// Note and label codes the policies test for.
const (
	subComponentMarker = "a,"
	unphysicalNotes    = "SUXY"
	physicalNotes      = "COTVZ"
)

// abcPairs are the label substrings kept by PolicyABC.
var abcPairs = []string{"AB", "Aa", "AC", "BC"}

// Filter applies a selection policy to a system's components. It holds no
// per-call state and is safe for concurrent use.
type Filter struct {
	maxMagDiff float64
	reconciler reconciler.Reconciler
	logger     *zerolog.Logger
}

// New creates a Filter.
func New(opts ...Option) (*Filter, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Filter{
		maxMagDiff: options.maxMagDiff,
		reconciler: options.reconciler,
		logger:     options.logger,
	}, nil
}

// MaxMagDiff returns the magnitude difference threshold.
func (f *Filter) MaxMagDiff() float64 { return f.maxMagDiff }

// Select looks up id in src, applies policy to a copy of its rows and
// returns the surviving table together with the canonical identifiers of
// its components.
//
// An absent system yields (nil, nil, nil). A system whose every component
// was removed yields a nil table and nil identifiers. For an unrecognised
// policy the sorted but unfiltered table and its identifiers are returned
// along with an *errors.UnknownPolicyError.
func (f *Filter) Select(src Source, id wds.SystemID, policy Policy) (*wds.Table, []string, error) {
	rows, ok := src.Lookup(id)
	if !ok || rows == nil {
		f.logger.Debug().Str("wds_id", id.String()).Msg("System not in catalog")
		return nil, nil, nil
	}

	// Lookup may hand back shared storage; never touch it.
	table := rows.Clone()
	table.System = id
	table.SortByLabel()

	var policyErr error
	switch policy {
	case PolicyNegative:
		f.pruneSubComponents(table)
		f.pruneUnphysical(table)
		f.pruneMagDiff(table)
	case PolicyPositive:
		f.selectPhysical(table)
	case PolicyABC:
		f.selectABC(table)
	default:
		policyErr = errors.NewUnknownPolicyError(policy.String())
		f.logger.Warn().
			Str("wds_id", id.String()).
			Int("policy", int(policy)).
			Msg("Unknown filter policy, components left unfiltered")
	}

	if table.Len() == 0 {
		f.logger.Debug().
			Str("wds_id", id.String()).
			Stringer("policy", policy).
			Msg("All components removed")
		return nil, nil, policyErr
	}
	return table, f.reconciler.Reconcile(table, id), policyErr
}

// pruneSubComponents removes spectroscopic sub-component rows (Aa,Ab).
func (f *Filter) pruneSubComponents(t *wds.Table) {
	n := t.Remove(func(c wds.Component) bool {
		return strings.Contains(c.Label, subComponentMarker)
	})
	f.logRemoved(t, n, "spectroscopic sub-components")
}

// pruneUnphysical removes rows whose notes flag them as optical or
// statistically inconsistent.
func (f *Filter) pruneUnphysical(t *wds.Table) {
	n := t.Remove(func(c wds.Component) bool {
		return strings.ContainsAny(c.Notes, unphysicalNotes)
	})
	f.logRemoved(t, n, "non-physical components")
}

// pruneMagDiff removes companions more than maxMagDiff fainter than the
// primary. Rows with an unknown magnitude are kept.
func (f *Filter) pruneMagDiff(t *wds.Table) {
	n := t.Remove(func(c wds.Component) bool {
		d := c.MagDiff()
		return !math.IsNaN(d) && d > f.maxMagDiff
	})
	f.logRemoved(t, n, "large magnitude difference components")
}

// selectPhysical keeps rows with an orbit, or common parallax or proper
// motion.
func (f *Filter) selectPhysical(t *wds.Table) {
	n := t.Remove(func(c wds.Component) bool {
		return !strings.ContainsAny(c.Notes, physicalNotes)
	})
	f.logRemoved(t, n, "non-definite components")
}

func (f *Filter) selectABC(t *wds.Table) {
	n := t.Remove(func(c wds.Component) bool {
		label := c.EffectiveLabel()
		for _, pair := range abcPairs {
			if strings.Contains(label, pair) {
				return false
			}
		}
		return true
	})
	f.logRemoved(t, n, "non-ABC components")
}

func (f *Filter) logRemoved(t *wds.Table, n int, what string) {
	if n == 0 {
		return
	}
	f.logger.Debug().
		Str("wds_id", t.System.String()).
		Int("removed", n).
		Int("remaining", t.Len()).
		Msgf("Removed %s", what)
}
