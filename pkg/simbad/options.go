package simbad

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/pkg/angle"
	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/logging"
)

// options configures a Parser.
type options struct {
	converter AngleConverter
	logger    *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		converter: angle.New(),
		logger:    logging.Default(),
	}
}

// Option is a function that configures a Parser.
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

// WithConverter sets the coordinate converter.
func WithConverter(c AngleConverter) Option {
	return func(o *options) error {
		if c == nil {
			return errors.NewValidationError("converter", nil, "cannot be nil")
		}
		o.converter = c
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
