package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery"
	"github.com/agentstation/wdsquery/internal/config"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	CatalogFunc   func() (*wds.Catalog, error)
	ClientFunc    func(...wdsquery.Option) (wdsquery.Client, error)
	SettingsValue config.Settings
	LoggerValue   *zerolog.Logger
	Format        string
	VersionValue  string
}

// Catalog returns a catalog using the mock function or nil.
func (m *Mock) Catalog() (*wds.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	return nil, nil
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client() (wdsquery.Client, error) {
	return m.ClientWithOptions()
}

// ClientWithOptions returns a client using the mock function or nil.
func (m *Mock) ClientWithOptions(opts ...wdsquery.Option) (wdsquery.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc(opts...)
	}
	return nil, nil
}

// Settings returns SettingsValue.
func (m *Mock) Settings() config.Settings {
	return m.SettingsValue
}

// Logger returns LoggerValue or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerValue != nil {
		return m.LoggerValue
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns Format.
func (m *Mock) OutputFormat() string {
	return m.Format
}

// Version returns VersionValue or "dev".
func (m *Mock) Version() string {
	if m.VersionValue != "" {
		return m.VersionValue
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string { return "unknown" }

// Date returns "unknown".
func (m *Mock) Date() string { return "unknown" }

// BuiltBy returns "test".
func (m *Mock) BuiltBy() string { return "test" }

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
