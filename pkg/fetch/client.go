// Package fetch downloads HTTP and HTTPS resources into memory or onto disk.
// The transport is chosen from the URL scheme: plain for http, TLS for https.
// Redirects are not followed and responses with status 400 or above fail with
// a *StatusError.
package fetch

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/oauth2"

	"github.com/cecil-the-coder/go-toolkit/pkg/stream"
)

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "go-toolkit/1.0"

// ErrUnsupportedScheme is returned for URLs whose scheme is not http or https.
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// Config configures a Client.
type Config struct {
	// Timeout bounds a whole request including the body read. Zero means no
	// client-side limit; use the context for per-call deadlines.
	Timeout   time.Duration     `yaml:"timeout" json:"timeout,omitempty"`
	UserAgent string            `yaml:"user_agent" json:"user_agent,omitempty"`
	Headers   map[string]string `yaml:"headers" json:"headers,omitempty"`
}

// Metrics is a snapshot of client activity.
type Metrics struct {
	TotalRequests   int64     `json:"total_requests"`
	FailedRequests  int64     `json:"failed_requests"`
	BytesReceived   int64     `json:"bytes_received"`
	LastRequestTime time.Time `json:"last_request_time"`
}

// Client fetches URLs. It is safe for concurrent use.
type Client struct {
	plain  *http.Client
	secure *http.Client
	config Config
	logger *log.Logger

	requestCount  atomic.Int64
	errorCount    atomic.Int64
	bytesReceived atomic.Int64

	mu          sync.RWMutex
	lastRequest time.Time
}

type clientOptions struct {
	tlsConfig   *tls.Config
	tokenSource oauth2.TokenSource
	logger      *log.Logger
}

// NewClient creates a client with a plain transport for http URLs and a TLS
// transport for https URLs.
func NewClient(config Config) *Client {
	return newClient(config, clientOptions{})
}

func newClient(config Config, opts clientOptions) *Client {
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}

	plainTransport := http.DefaultTransport.(*http.Transport).Clone()
	plainTransport.TLSClientConfig = nil

	secureTransport := http.DefaultTransport.(*http.Transport).Clone()
	tlsConfig := opts.tlsConfig
	if tlsConfig == nil {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	secureTransport.TLSClientConfig = tlsConfig

	var plainRT, secureRT http.RoundTripper = plainTransport, secureTransport
	if opts.tokenSource != nil {
		plainRT = &oauth2.Transport{Source: opts.tokenSource, Base: plainTransport}
		secureRT = &oauth2.Transport{Source: opts.tokenSource, Base: secureTransport}
	}

	return &Client{
		plain:  newHTTPClient(plainRT, config.Timeout),
		secure: newHTTPClient(secureRT, config.Timeout),
		config: config,
		logger: opts.logger,
	}
}

func newHTTPClient(rt http.RoundTripper, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: rt,
		Timeout:   timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Buffer fetches rawURL and returns the whole response body.
func (c *Client) Buffer(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }() //nolint:errcheck // Best effort close

	body, err := stream.ToBuffer(resp.Body)
	c.bytesReceived.Add(int64(len(body)))
	if err != nil {
		c.errorCount.Add(1)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// File streams the body of rawURL into dest, creating parent directories
// first, and returns dest. The file is complete only when File returns nil:
// on error dest may be missing or hold a partial body and should be discarded.
func (c *Client) File(ctx context.Context, rawURL, dest string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }() //nolint:errcheck // Best effort close

	out, err := os.Create(dest)
	if err != nil {
		c.errorCount.Add(1)
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	written, copyErr := io.Copy(out, resp.Body)
	c.bytesReceived.Add(written)
	if copyErr != nil {
		_ = out.Close()
		c.errorCount.Add(1)
		return "", fmt.Errorf("failed to write file: %w", copyErr)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		c.errorCount.Add(1)
		return "", fmt.Errorf("failed to flush file: %w", err)
	}
	if err := out.Close(); err != nil {
		c.errorCount.Add(1)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	c.logf("[Fetch] Downloaded %s to %s (%d bytes)", rawURL, dest, written)
	return dest, nil
}

// get issues a GET on the transport matching the URL scheme and rejects
// responses with status >= 400.
func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	c.requestCount.Add(1)
	c.mu.Lock()
	c.lastRequest = time.Now()
	c.mu.Unlock()

	u, err := url.Parse(rawURL)
	if err != nil {
		c.errorCount.Add(1)
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	client, err := c.clientFor(u)
	if err != nil {
		c.errorCount.Add(1)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		c.errorCount.Add(1)
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range c.config.Headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		c.errorCount.Add(1)
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		_ = resp.Body.Close()
		c.errorCount.Add(1)
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        rawURL,
		}
	}

	return resp, nil
}

func (c *Client) clientFor(u *url.URL) (*http.Client, error) {
	switch u.Scheme {
	case "https":
		return c.secure, nil
	case "http":
		return c.plain, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// Metrics returns a snapshot of the client's counters.
func (c *Client) Metrics() Metrics {
	c.mu.RLock()
	last := c.lastRequest
	c.mu.RUnlock()

	return Metrics{
		TotalRequests:   c.requestCount.Load(),
		FailedRequests:  c.errorCount.Load(),
		BytesReceived:   c.bytesReceived.Load(),
		LastRequestTime: last,
	}
}

// ResetMetrics zeroes the client's counters.
func (c *Client) ResetMetrics() {
	c.requestCount.Store(0)
	c.errorCount.Store(0)
	c.bytesReceived.Store(0)
	c.mu.Lock()
	c.lastRequest = time.Time{}
	c.mu.Unlock()
}

func (c *Client) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

var defaultClient = NewClient(Config{})

// Buffer fetches rawURL with the shared default client.
func Buffer(ctx context.Context, rawURL string) ([]byte, error) {
	return defaultClient.Buffer(ctx, rawURL)
}

// File downloads rawURL to dest with the shared default client.
func File(ctx context.Context, rawURL, dest string) (string, error) {
	return defaultClient.File(ctx, rawURL, dest)
}
