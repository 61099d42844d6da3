package wdsquery

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/internal/sources/simbad"
	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/filter"
	"github.com/agentstation/wdsquery/pkg/logging"
	"github.com/agentstation/wdsquery/pkg/reconciler"
	record "github.com/agentstation/wdsquery/pkg/simbad"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// options holds the configuration of a Client.
type options struct {
	catalog    *wds.Catalog
	maxMagDiff *float64
	reconciler reconciler.Reconciler
	filter     *filter.Filter
	parser     *record.Parser
	fetcher    Fetcher
	resolver   Resolver
	logger     *zerolog.Logger
}

// Option is a function that configures a Client.
type Option func(*options) error

func defaultOptions() *options {
	return &options{logger: logging.Default()}
}

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions applies opts and builds the collaborators that were not
// supplied.
func newOptions(opts ...Option) (*options, error) {
	o, err := defaultOptions().apply(opts...)
	if err != nil {
		return nil, err
	}

	if o.filter == nil {
		fOpts := []filter.Option{filter.WithLogger(o.logger)}
		if o.maxMagDiff != nil {
			fOpts = append(fOpts, filter.WithMaxMagDiff(*o.maxMagDiff))
		}
		if o.reconciler != nil {
			fOpts = append(fOpts, filter.WithReconciler(o.reconciler))
		}
		if o.filter, err = filter.New(fOpts...); err != nil {
			return nil, err
		}
	}

	if o.parser == nil {
		if o.parser, err = record.NewParser(record.WithLogger(o.logger)); err != nil {
			return nil, err
		}
	}

	if o.fetcher == nil {
		if o.fetcher, err = simbad.New(simbad.WithLogger(o.logger)); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithCatalog sets the WDS catalog used for system lookups.
func WithCatalog(c *wds.Catalog) Option {
	return func(o *options) error {
		if c == nil {
			return errors.NewValidationError("catalog", nil, "cannot be nil")
		}
		o.catalog = c
		return nil
	}
}

// WithMaxMagDiff sets the magnitude difference threshold of the negative
// policy. It is ignored when WithFilter is used.
func WithMaxMagDiff(d float64) Option {
	return func(o *options) error {
		o.maxMagDiff = &d
		return nil
	}
}

// WithReconciler sets the identifier reconciler. It is ignored when
// WithFilter is used.
func WithReconciler(r reconciler.Reconciler) Option {
	return func(o *options) error {
		if r == nil {
			return errors.NewValidationError("reconciler", nil, "cannot be nil")
		}
		o.reconciler = r
		return nil
	}
}

// WithFilter sets a preconfigured component filter.
func WithFilter(f *filter.Filter) Option {
	return func(o *options) error {
		if f == nil {
			return errors.NewValidationError("filter", nil, "cannot be nil")
		}
		o.filter = f
		return nil
	}
}

// WithParser sets the Simbad record parser.
func WithParser(p *record.Parser) Option {
	return func(o *options) error {
		if p == nil {
			return errors.NewValidationError("parser", nil, "cannot be nil")
		}
		o.parser = p
		return nil
	}
}

// WithFetcher sets the source of Simbad responses.
func WithFetcher(f Fetcher) Option {
	return func(o *options) error {
		if f == nil {
			return errors.NewValidationError("fetcher", nil, "cannot be nil")
		}
		o.fetcher = f
		return nil
	}
}

// WithAliases sets the star name resolver used by Query.
func WithAliases(r Resolver) Option {
	return func(o *options) error {
		o.resolver = r
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
