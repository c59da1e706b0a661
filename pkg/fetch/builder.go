package fetch

import (
	"crypto/tls"
	"log"
	"time"

	"golang.org/x/oauth2"
)

// ClientBuilder provides a builder pattern for Client
type ClientBuilder struct {
	config Config
	opts   clientOptions
}

// NewClientBuilder creates a new builder
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{}
}

// WithConfig replaces the whole configuration
func (b *ClientBuilder) WithConfig(config Config) *ClientBuilder {
	b.config = config
	return b
}

// WithTimeout sets the timeout
func (b *ClientBuilder) WithTimeout(timeout time.Duration) *ClientBuilder {
	b.config.Timeout = timeout
	return b
}

// WithUserAgent sets the user agent
func (b *ClientBuilder) WithUserAgent(userAgent string) *ClientBuilder {
	b.config.UserAgent = userAgent
	return b
}

// WithHeaders adds default headers sent on every request
func (b *ClientBuilder) WithHeaders(headers map[string]string) *ClientBuilder {
	if b.config.Headers == nil {
		b.config.Headers = make(map[string]string)
	}
	for k, v := range headers {
		b.config.Headers[k] = v
	}
	return b
}

// WithTLSConfig sets the TLS configuration of the https transport
func (b *ClientBuilder) WithTLSConfig(cfg *tls.Config) *ClientBuilder {
	b.opts.tlsConfig = cfg
	return b
}

// WithTokenSource authenticates every request with tokens from ts
func (b *ClientBuilder) WithTokenSource(ts oauth2.TokenSource) *ClientBuilder {
	b.opts.tokenSource = ts
	return b
}

// WithLogger enables download logging
func (b *ClientBuilder) WithLogger(logger *log.Logger) *ClientBuilder {
	b.opts.logger = logger
	return b
}

// Build creates the client
func (b *ClientBuilder) Build() *Client {
	return newClient(b.config, b.opts)
}
