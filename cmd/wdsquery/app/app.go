// Package app provides the application context and dependency management
// for the wdsquery CLI. It centralizes configuration, logging and the lazily
// built catalog and query client.
package app

import (
	"context"
	"io/fs"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery"
	"github.com/agentstation/wdsquery/internal/aliases"
	"github.com/agentstation/wdsquery/internal/config"
	"github.com/agentstation/wdsquery/internal/sources/simbad"
	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// App represents the wdsquery application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Lazily initialized dependencies
	mu      sync.RWMutex
	catalog *wds.Catalog
	client  wdsquery.Client
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// and config file; options can replace any dependency.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = cfg

	logger := NewLogger(cfg)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Settings returns the resolved configuration settings.
func (a *App) Settings() config.Settings {
	return a.config.Settings
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the output format chosen on the command line.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Catalog returns the WDS catalog, loading it on first use.
func (a *App) Catalog() (*wds.Catalog, error) {
	a.mu.RLock()
	if a.catalog != nil {
		cat := a.catalog
		a.mu.RUnlock()
		return cat, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.catalog != nil {
		return a.catalog, nil
	}

	path := a.config.Settings.WDSFile
	if path == "" {
		return nil, errors.NewConfigError("wds_file",
			"no WDS catalog configured; use --wds or set WDSQUERY_WDS_FILE", nil)
	}

	a.logger.Debug().Str("file", path).Msg("Loading WDS catalog")
	cat, err := wds.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().
		Int("systems", cat.Len()).
		Int("components", cat.Components()).
		Msg("WDS catalog loaded")

	a.catalog = cat
	return cat, nil
}

// Client returns the query client, creating it lazily if needed.
func (a *App) Client() (wdsquery.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	c, err := a.ClientWithOptions()
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.client == nil {
		a.client = c
	}
	return a.client, nil
}

// ClientWithOptions returns a new client built from the configuration with
// opts applied last.
func (a *App) ClientWithOptions(opts ...wdsquery.Option) (wdsquery.Client, error) {
	base, err := a.clientOptions()
	if err != nil {
		return nil, err
	}
	c, err := wdsquery.New(append(base, opts...)...)
	if err != nil {
		return nil, errors.NewConfigError("client", "invalid query options", err)
	}
	return c, nil
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.client = nil
	a.catalog = nil
	return nil
}

// clientOptions constructs client options from the app configuration.
func (a *App) clientOptions() ([]wdsquery.Option, error) {
	s := a.config.Settings
	opts := []wdsquery.Option{
		wdsquery.WithLogger(a.logger),
		wdsquery.WithMaxMagDiff(s.MaxMagDiff),
	}

	if s.WDSFile != "" {
		cat, err := a.Catalog()
		if err != nil {
			return nil, err
		}
		opts = append(opts, wdsquery.WithCatalog(cat))
	}

	fetcher, err := simbad.New(
		simbad.WithBaseURL(s.SimbadURL),
		simbad.WithCacheDir(s.CacheDir),
		simbad.WithUseCache(s.UseCache),
		simbad.WithQueryDelay(s.QueryDelay),
		simbad.WithHTTPTimeout(s.HTTPTimeout),
		simbad.WithLogger(a.logger),
	)
	if err != nil {
		return nil, errors.NewConfigError("simbad", "invalid fetcher settings", err)
	}
	opts = append(opts, wdsquery.WithFetcher(fetcher))

	dict, err := a.loadAliases()
	if err != nil {
		return nil, err
	}
	if dict != nil {
		opts = append(opts, wdsquery.WithAliases(dict))
	}
	return opts, nil
}

// loadAliases reads the alias file. A missing file is only an error when
// it was named explicitly.
func (a *App) loadAliases() (*aliases.Dictionary, error) {
	path := a.config.Settings.AliasesFile
	if path == "" {
		return nil, nil
	}
	dict, err := aliases.LoadFile(path, a.logger)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !a.config.AliasesExplicit {
			a.logger.Debug().Str("file", path).Msg("No star alias file")
			return nil, nil
		}
		return nil, err
	}
	a.logger.Debug().Str("file", path).Int("aliases", dict.Len()).Msg("Using star alias dictionary")
	return dict, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) error {
		a.config = cfg
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets a preloaded WDS catalog (useful for testing).
func WithCatalog(cat *wds.Catalog) Option {
	return func(a *App) error {
		a.catalog = cat
		return nil
	}
}

// WithClient sets a custom client (useful for testing).
func WithClient(c wdsquery.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
