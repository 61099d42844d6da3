package app

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/agentstation/wdsquery"
	"github.com/agentstation/wdsquery/pkg/errors"
	"github.com/agentstation/wdsquery/pkg/wds"
)

// newTestApp creates an app whose caches live in a temporary directory.
func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	t.Setenv("WDSQUERY_CACHE_DIR", t.TempDir())
	t.Setenv("WDSQUERY_ALIASES_FILE", "")
	t.Setenv("WDSQUERY_WDS_FILE", "")

	app, err := New("1.0.0", "abc123", "2024-01-01", "test", opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app := newTestApp(t)

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_CatalogRequiresFile verifies the error when no catalog is configured.
func TestApp_CatalogRequiresFile(t *testing.T) {
	app := newTestApp(t)

	_, err := app.Catalog()
	var cfgErr *errors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Catalog() error = %v, want ConfigError", err)
	}
}

// TestApp_CatalogPreloaded verifies WithCatalog bypasses loading.
func TestApp_CatalogPreloaded(t *testing.T) {
	cat := wds.NewCatalog(wds.Component{System: "14396-6050", Label: "AB"})
	app := newTestApp(t, WithCatalog(cat))

	got, err := app.Catalog()
	if err != nil {
		t.Fatalf("Catalog() failed: %v", err)
	}
	if got != cat {
		t.Error("Catalog() did not return the preloaded catalog")
	}
}

// TestApp_Client_ThreadSafe verifies concurrent Client() calls share one client.
func TestApp_Client_ThreadSafe(t *testing.T) {
	app := newTestApp(t)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]wdsquery.Client, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = app.Client()
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		if errs[i] != nil {
			t.Fatalf("Client() failed in goroutine %d: %v", i, errs[i])
		}
		if results[i] != results[0] {
			t.Errorf("goroutine %d got a different client instance", i)
		}
	}
}

// TestApp_Shutdown verifies shutdown drops the lazy dependencies.
func TestApp_Shutdown(t *testing.T) {
	app := newTestApp(t)

	first, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed: %v", err)
	}
	if err := app.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	second, err := app.Client()
	if err != nil {
		t.Fatalf("Client() after Shutdown failed: %v", err)
	}
	if first == second {
		t.Error("Client() returned the old client after Shutdown")
	}
}

// TestApp_MissingExplicitAliases verifies an explicit alias file must exist.
func TestApp_MissingExplicitAliases(t *testing.T) {
	app := newTestApp(t)
	app.config.Settings.AliasesFile = t.TempDir() + "/missing.csv"

	if _, err := app.ClientWithOptions(); err != nil {
		t.Fatalf("ClientWithOptions() with default alias file failed: %v", err)
	}

	app.config.AliasesExplicit = true
	if _, err := app.ClientWithOptions(); !errors.IsIO(err) {
		t.Errorf("ClientWithOptions() error = %v, want IO error", err)
	}
}

// TestExecute_Decode runs a command through the root command.
func TestExecute_Decode(t *testing.T) {
	app := newTestApp(t)
	root := app.createRootCommand()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"decode", "J14396-6050A", "-o", "json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	want := "\"wds\": \"14396-6050\""
	if !bytes.Contains(buf.Bytes(), []byte(want)) {
		t.Errorf("output %q does not contain %q", buf.String(), want)
	}
}

// TestExecute_InvalidFormat verifies the output format is checked up front.
func TestExecute_InvalidFormat(t *testing.T) {
	app := newTestApp(t)
	err := app.Execute(context.Background(), []string{"decode", "J14396-6050A", "-o", "xml"})
	if !errors.IsValidationError(err) {
		t.Errorf("Execute() error = %v, want validation error", err)
	}
}

// TestVersionCommand verifies the version output.
func TestVersionCommand(t *testing.T) {
	app := newTestApp(t)
	cmd := app.NewVersionCommand()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	for _, want := range []string{"wdsquery version 1.0.0", "commit: abc123", "built by: test", "platform:"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("version output missing %q", want)
		}
	}
}
