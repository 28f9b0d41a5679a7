// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpclient

import (
	"net/http"
	"os"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/lykmapipo/http-client/retry"
	"github.com/lykmapipo/http-client/timeout"
)

// Environment variables consulted for the default base URL, in order.
const (
	// EnvBaseURL is the primary environment variable naming the
	// default base URL.
	EnvBaseURL = "BASE_URL"
	// EnvReactAppBaseURL is the front-end-framework-prefixed fallback
	// for EnvBaseURL, so a service and its React front end can share
	// one .env file.
	EnvReactAppBaseURL = "REACT_APP_BASE_URL"
)

// An Option configures a Client built by New. Options are applied in
// order after the environment-driven defaults, so the caller always
// wins.
type Option func(*Client)

// WithBaseURL sets the base URL against which relative request URLs
// are resolved, overriding the environment-provided default.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.BaseURL = url }
}

// WithHeader sets a default header field merged into every request,
// replacing the built-in default for that field if there is one.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if c.Header == nil {
			c.Header = make(http.Header)
		}
		c.Header.Set(key, value)
	}
}

// WithHTTPDoer sets the underlying HTTP transport. Use it to supply a
// tuned http.Client or any other HTTPDoer implementation.
func WithHTTPDoer(d HTTPDoer) Option {
	return func(c *Client) { c.HTTPDoer = d }
}

// WithRetryPolicy sets the client's retry policy. Use retry.Never to
// disable retries.
func WithRetryPolicy(p retry.Policy) Option {
	return func(c *Client) { c.RetryPolicy = p }
}

// WithTimeoutPolicy sets the client's attempt timeout policy.
func WithTimeoutPolicy(p timeout.Policy) Option {
	return func(c *Client) { c.TimeoutPolicy = p }
}

// WithLogger sets the logger receiving per-attempt Debug and Warn
// lines.
func WithLogger(l hclog.Logger) Option {
	return func(c *Client) { c.Logger = l }
}

// WithHandlers sets the client's event handler group.
func WithHandlers(g *HandlerGroup) Option {
	return func(c *Client) { c.Handlers = g }
}

// WithRequestID installs a handler stamping a fresh UUID into the
// X-Request-Id header of every request attempt.
func WithRequestID() Option {
	return func(c *Client) {
		if c.Handlers == nil {
			c.Handlers = &HandlerGroup{}
		}
		c.Handlers.PushBack(BeforeAttempt, NewRequestIDHandler())
	}
}

var loadEnvOnce sync.Once

// loadEnv loads a .env file from the working directory into the
// process environment, once. A missing file is not an error.
func loadEnv() {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

// envBaseURL returns the base URL provided by the environment: the
// value of BASE_URL, or of REACT_APP_BASE_URL when BASE_URL is unset.
func envBaseURL() string {
	if v := os.Getenv(EnvBaseURL); v != "" {
		return v
	}
	return os.Getenv(EnvReactAppBaseURL)
}

// defaultHeader returns the built-in default headers: JSON in, JSON
// out.
func defaultHeader() http.Header {
	h := make(http.Header)
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	return h
}

// New builds a Client from merged configuration: defaults first (base
// URL from the environment, JSON Accept and Content-Type headers),
// then the caller's options, which win field by field. The merge is
// shallow.
//
// New validates the merged configuration and returns an error when the
// base URL, if set at all, is not a well-formed URL. Create the client
// once and reuse it across the application.
func New(opts ...Option) (*Client, error) {
	loadEnv()

	c := &Client{
		BaseURL: envBaseURL(),
		Header:  defaultHeader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// validate checks the merged configuration.
func (c *Client) validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, is.URL),
	)
}
