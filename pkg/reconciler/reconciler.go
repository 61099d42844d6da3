// Package reconciler turns the surviving components of a WDS system into
// the canonical identifiers Simbad knows them by, e.g. J14396-6050A.
package reconciler

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/pkg/logging"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// Reconciler is the main interface for building canonical identifiers.
type Reconciler interface {
	// Reconcile returns the sorted, de-duplicated identifiers for the
	// components of t. It returns nil for a nil or empty table.
	Reconcile(t *wds.Table, id wds.SystemID) []string
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	splitters []Splitter
	logger    *zerolog.Logger
}

// New creates a new Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{
		splitters: options.splitters,
		logger:    options.logger,
	}, nil
}

// Default returns a Reconciler using the default split rules.
func Default() Reconciler {
	return &reconciler{splitters: DefaultSplitters(), logger: logging.Default()}
}

// Reconcile implements Reconciler.
func (r *reconciler) Reconcile(t *wds.Table, id wds.SystemID) []string {
	if t.Len() == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var fragments []string
	for _, comp := range t.Components {
		for _, frag := range r.fragments(comp.EffectiveLabel()) {
			if _, ok := seen[frag]; ok {
				continue
			}
			seen[frag] = struct{}{}
			fragments = append(fragments, frag)
		}
	}
	slices.Sort(fragments)

	ids := make([]string, len(fragments))
	for i, frag := range fragments {
		ids[i] = wds.EncodeSimbadID(id, frag)
	}

	r.logger.Debug().
		Str("wds_id", id.String()).
		Int("components", t.Len()).
		Strs("ids", ids).
		Msg("Reconciled component identifiers")
	return ids
}

func (r *reconciler) fragments(label string) []string {
	return split(r.splitters, label)
}

// Fragments splits a single label with the default rules. An empty label
// is treated as AB.
func Fragments(label string) []string {
	return split(DefaultSplitters(), wds.Component{Label: label}.EffectiveLabel())
}

func split(splitters []Splitter, label string) []string {
	for _, s := range splitters {
		if s.Match(label) {
			return s.Split(label)
		}
	}
	return []string{label}
}
