// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lykmapipo/http-client/retry"
)

// Test server helpers shared by the root package tests. Every server
// is closed automatically when the test finishes.

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	s := httptest.NewServer(h)
	t.Cleanup(s.Close)
	return s
}

// newJSONServer serves a fixed status and JSON body on every request.
func newJSONServer(t *testing.T, status int, body string) *httptest.Server {
	return newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// echo is what newEchoServer reports back about the request it
// received.
type echo struct {
	Method string      `json:"method"`
	Path   string      `json:"path"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// newEchoServer responds 200 with a JSON description of the request
// received, so tests can assert on what was actually sent.
func newEchoServer(t *testing.T) *httptest.Server {
	return newServer(t, func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(echo{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header,
			Body:   b,
		})
	})
}

func decodeEcho(t *testing.T, body []byte) echo {
	t.Helper()
	var ec echo
	require.NoError(t, json.Unmarshal(body, &ec))
	return ec
}

// newCountingServer responds 204 and counts the requests received, so
// tests can prove that no network I/O happened.
func newCountingServer(t *testing.T) (*httptest.Server, *int32) {
	var hits int32
	s := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNoContent)
	})
	return s, &hits
}

// newFlakyServer fails the first n requests with the given status and
// succeeds afterward, for exercising the retry loop.
func newFlakyServer(t *testing.T, n int, failStatus int) (*httptest.Server, *int32) {
	var hits int32
	s := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		hit := atomic.AddInt32(&hits, 1)
		if int(hit) <= n {
			w.WriteHeader(failStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true}`)
	})
	return s, &hits
}

// newTestClient returns a client that does not retry, for tests where
// a single attempt is the point.
func newTestClient() *Client {
	return &Client{RetryPolicy: retry.Never}
}
