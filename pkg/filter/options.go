package filter

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/logging"
	"github.com/agentstation/wdsquery/pkg/reconciler"
)

// options configures a Filter.
type options struct {
	maxMagDiff float64
	reconciler reconciler.Reconciler
	logger     *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		maxMagDiff: constants.DefaultMaxMagDiff,
		reconciler: reconciler.Default(),
		logger:     logging.Default(),
	}
}

// Option is a function that configures a Filter.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithMaxMagDiff sets the largest mag2-mag1 kept by PolicyNegative.
func WithMaxMagDiff(diff float64) Option {
	return func(o *options) error {
		if math.IsNaN(diff) || diff < 0 {
			return errors.NewValidationError("max_mag_diff", diff, "must be a non-negative number")
		}
		o.maxMagDiff = diff
		return nil
	}
}

// WithReconciler sets the identifier reconciler.
func WithReconciler(r reconciler.Reconciler) Option {
	return func(o *options) error {
		if r == nil {
			return errors.NewValidationError("reconciler", nil, "cannot be nil")
		}
		o.reconciler = r
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.NewValidationError("logger", nil, "cannot be nil")
		}
		o.logger = logger
		return nil
	}
}
