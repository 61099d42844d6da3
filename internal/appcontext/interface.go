// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type so they can be tested with a mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery"
	"github.com/agentstation/wdsquery/internal/config"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// Interface defines the application context interface that commands need.
type Interface interface {
	// Catalog returns the configured WDS catalog, loading it on first use.
	Catalog() (*wds.Catalog, error)

	// Client returns the default query client, creating it lazily if needed.
	Client() (wdsquery.Client, error)

	// ClientWithOptions creates a client with extra options applied after
	// the configured ones.
	ClientWithOptions(...wdsquery.Option) (wdsquery.Client, error)

	// Settings returns the resolved configuration.
	Settings() config.Settings

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
