// Package transport performs the plain-text HTTP requests used to talk to
// remote catalog services.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/agentstation/wdsquery/pkg/constants"
	"github.com/agentstation/wdsquery/pkg/errors"
)

// DefaultUserAgent identifies wdsquery to remote services.
const DefaultUserAgent = "wdsquery (+https://github.com/agentstation/wdsquery)"

// maxBodySize bounds a single text response.
const maxBodySize = 4 << 20

// Client provides paced HTTP GETs of text resources.
type Client struct {
	http      *http.Client
	pacer     *Pacer
	service   string
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithPacer sets the pacer consulted before every request.
func WithPacer(p *Pacer) Option {
	return func(c *Client) {
		c.pacer = p
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a transport client for the named service. Requests time out
// after constants.DefaultHTTPTimeout unless another client is supplied.
func New(service string, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: constants.DefaultHTTPTimeout},
		service:   service,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetText fetches url and returns the body. A non-200 status is an
// *errors.APIError carrying the status and the start of the body; a request
// that never got a response is an *errors.APIError wrapping the cause.
func (c *Client) GetText(ctx context.Context, url string) ([]byte, error) {
	if c.pacer != nil {
		if err := c.pacer.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapValidation("url", err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapAPI(c.service, 0, err)
	}
	return c.readBody(resp, url)
}

func (c *Client) readBody(resp *http.Response, url string) ([]byte, error) {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &errors.APIError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Endpoint:   url,
			Message:    fmt.Sprintf("%s: %s", resp.Status, truncate(string(body), 200)),
		}
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
