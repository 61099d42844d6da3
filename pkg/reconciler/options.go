package reconciler

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/logging"
)

// options configures a reconciler.
type options struct {
	splitters []Splitter
	logger    *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		splitters: DefaultSplitters(),
		logger:    logging.Default(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithSplitters replaces the label decomposition rules.
func WithSplitters(splitters ...Splitter) Option {
	return func(o *options) error {
		if len(splitters) == 0 {
			return &errors.ValidationError{
				Field:   "splitters",
				Message: "at least one splitter is required",
			}
		}
		o.splitters = splitters
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &errors.ValidationError{Field: "logger", Message: "cannot be nil"}
		}
		o.logger = logger
		return nil
	}
}
