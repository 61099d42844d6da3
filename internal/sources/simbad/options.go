package simbad

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/internal/cache"
	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/logging"
)

type options struct {
	baseURL    string
	cacheDir   string
	useCache   bool
	queryDelay time.Duration
	httpClient *http.Client
	memory     *cache.Cache
	logger     *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		baseURL:    constants.DefaultSimbadURL,
		cacheDir:   constants.DefaultCacheDir,
		useCache:   true,
		queryDelay: constants.SimbadQueryDelay,
		logger:     logging.Default(),
	}
}

// Option configures a Client.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.memory == nil {
		o.memory = cache.New(constants.MemoryCacheTTL, constants.MemoryCacheCleanup)
	}
	return o, nil
}

func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithBaseURL sets the sim-id endpoint.
func WithBaseURL(u string) Option {
	return func(o *options) error {
		u = strings.TrimSpace(u)
		if u == "" {
			return errors.NewValidationError("base_url", u, "cannot be empty")
		}
		o.baseURL = strings.TrimRight(u, "?")
		return nil
	}
}

// WithCacheDir sets the response cache directory. An empty dir disables the
// disk cache.
func WithCacheDir(dir string) Option {
	return func(o *options) error {
		o.cacheDir = dir
		return nil
	}
}

// WithUseCache toggles reading cached responses.
func WithUseCache(use bool) Option {
	return func(o *options) error {
		o.useCache = use
		return nil
	}
}

// WithQueryDelay sets the minimum spacing between network requests.
func WithQueryDelay(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.NewValidationError("query_delay", d, "cannot be negative")
		}
		o.queryDelay = d
		return nil
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.NewValidationError("http_client", nil, "cannot be nil")
		}
		o.httpClient = hc
		return nil
	}
}

// WithHTTPTimeout sets the per-request timeout.
func WithHTTPTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return errors.NewValidationError("http_timeout", d, "must be positive")
		}
		o.httpClient = &http.Client{Timeout: d}
		return nil
	}
}

// WithMemoryCache shares an in-memory cache between clients.
func WithMemoryCache(c *cache.Cache) Option {
	return func(o *options) error {
		if c == nil {
			return errors.NewValidationError("memory_cache", nil, "cannot be nil")
		}
		o.memory = c
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
