// Package simbad fetches plain-text object records from the Simbad sim-id
// service. Responses are cached in memory and on disk so that repeated
// queries for the same identifier do not hit the network.
package simbad

import (
	"context"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/wdsquery/internal/cache"
	"github.com/agentstation/wdsquery/internal/transport"
	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/errors"
	record "github.com/agentstation/wdsquery/pkg/simbad"
)

// ServiceName identifies Simbad in errors and logs.
const ServiceName = "simbad"

// Client fetches Simbad ASCII records.
type Client struct {
	baseURL   string
	cacheDir  string
	useCache  bool
	memory    *cache.Cache
	transport *transport.Client
	logger    *zerolog.Logger
}

// New creates a Simbad client.
func New(opts ...Option) (*Client, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	tOpts := []transport.Option{transport.WithPacer(transport.NewPacer(o.queryDelay))}
	if o.httpClient != nil {
		tOpts = append(tOpts, transport.WithHTTPClient(o.httpClient))
	}

	return &Client{
		baseURL:   o.baseURL,
		cacheDir:  o.cacheDir,
		useCache:  o.useCache,
		memory:    o.memory,
		transport: transport.New(ServiceName, tOpts...),
		logger:    o.logger,
	}, nil
}

// URL returns the sim-id query URL for ident.
func (c *Client) URL(ident string) string {
	q := url.Values{}
	q.Set("output.format", "ASCII")
	q.Set("Ident", ident)
	q.Set("obj.bibsel", "off")
	q.Set("obj.messel", "off")
	q.Set("obj.notesel", "off")
	return c.baseURL + "?" + q.Encode()
}

// CachePath returns the on-disk cache file for ident, or "" when disk
// caching is disabled.
func (c *Client) CachePath(ident string) string {
	if c.cacheDir == "" {
		return ""
	}
	name := strings.NewReplacer(" ", "_", "/", "_", string(filepath.Separator), "_").Replace(ident)
	return filepath.Join(c.cacheDir, name+constants.CacheFileSuffix)
}

// Stats reports in-memory cache usage.
func (c *Client) Stats() cache.Stats {
	return c.memory.GetStats()
}

// Fetch returns the response lines for ident. Cached responses are used
// unless caching was disabled; fresh responses are always written back.
func (c *Client) Fetch(ctx context.Context, ident string) ([]string, error) {
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return nil, errors.NewValidationError("ident", ident, "cannot be empty")
	}
	logger := c.logger.With().Str("ident", ident).Logger()

	if c.useCache {
		if lines, ok := c.memory.GetLines(ident); ok {
			logger.Debug().Msg("Using in-memory Simbad response")
			return lines, nil
		}
		if lines, ok := c.readDisk(&logger, ident); ok {
			c.memory.Set(ident, lines)
			return lines, nil
		}
	}

	endpoint := c.URL(ident)
	logger.Debug().Str("url", endpoint).Msg("Querying Simbad")
	body, err := c.transport.GetText(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	if path := c.CachePath(ident); path != "" {
		if err := c.writeDisk(path, body); err != nil {
			logger.Warn().Err(err).Msg("Could not cache Simbad response")
		}
	}

	lines := record.SplitLines(body)
	c.memory.Set(ident, lines)
	return lines, nil
}

func (c *Client) readDisk(logger *zerolog.Logger, ident string) ([]string, bool) {
	path := c.CachePath(ident)
	if path == "" {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn().Err(err).Str("path", path).Msg("Ignoring unreadable cache file")
		}
		return nil, false
	}
	logger.Debug().Str("path", path).Msg("Using cached Simbad response")
	return record.SplitLines(data), true
}

// writeDisk stores body at path through a temp file and rename.
func (c *Client) writeDisk(path string, body []byte) error {
	if err := os.MkdirAll(c.cacheDir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", "cache directory", err)
	}

	tempFile, err := os.CreateTemp(c.cacheDir, "simbad_*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(body); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("close", path, err)
	}
	if err := os.Chmod(tempPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("chmod", path, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}
