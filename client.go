// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpclient

import (
	"context"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/lykmapipo/http-client/request"
	"github.com/lykmapipo/http-client/retry"
	"github.com/lykmapipo/http-client/timeout"
)

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer. It must follow the contract documented on http.Client.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// A Client is a convenience HTTP client: it layers default
// configuration (base URL, default headers), shortcut verbs, retry and
// timeout policies, and plug-in event handlers on top of a lower-level
// HTTP transport. Its zero value is a valid configuration.
//
// The zero value client uses http.DefaultClient as the HTTPDoer,
// timeout.DefaultPolicy as the timeout policy, retry.DefaultPolicy as
// the retry policy, no base URL, no default headers, no logger, and an
// empty handler group.
//
// Build a configured client with New, which merges environment-driven
// defaults with caller options:
//
//	client, err := httpclient.New(
//		httpclient.WithBaseURL("https://api.example.com/v1"),
//	)
//
// Create the client once and reuse it; its HTTPDoer typically caches
// TCP connections, and there is deliberately no package-wide shared
// client instance. Client is safe for concurrent use by multiple
// goroutines.
//
// A Client is higher-level than its HTTPDoer. The HTTPDoer owns all
// details of sending requests and receiving responses (sockets, TLS,
// keep-alive, redirects), while Client builds on top of it:
//
// • Client resolves relative request URLs against its BaseURL and
// merges its default Header into every request (values set on the
// request plan win);
//
// • Client reads and buffers the entire response body into a []byte
// (the Execution.Body field);
//
// • Client retries failed attempts using a customizable retry policy
// and sets per-attempt timeouts using a customizable timeout policy;
//
// • Client invokes user-provided handler functions at designated
// plug-in points within the attempt/retry loop; and
//
// • Client's shortcut verbs (Get, Post, Put, Patch, Delete, Head,
// Options, and friends) normalize every failure, including
// error-status responses, into a uniform *failure.Error.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses. If nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer
	// BaseURL, when non-empty, is the absolute URL against which the
	// client resolves relative request URLs. New fills it from the
	// BASE_URL (or REACT_APP_BASE_URL) environment variable unless an
	// option overrides it.
	BaseURL string
	// Header contains default header fields merged into every request
	// plan the client executes. A header already present on the plan
	// is left alone: the caller wins.
	Header http.Header
	// RetryPolicy decides when to retry failed attempts and how long
	// to sleep before retrying. If nil, retry.DefaultPolicy is used.
	RetryPolicy retry.Policy
	// TimeoutPolicy specifies how to set timeouts on individual
	// request attempts. If nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a plan execution. If nil, no
	// custom handlers run.
	Handlers *HandlerGroup
	// Logger, when non-nil, receives a Debug line per request attempt
	// and a Warn line per failed attempt. A nil Logger disables
	// logging.
	Logger hclog.Logger
}

// Do executes an HTTP request plan and returns the results, following
// the client's timeout and retry policies and the low-level policy of
// the underlying HTTPDoer.
//
// Before the first attempt, Do resolves a relative plan URL against
// the client's BaseURL and merges the client's default Header into the
// plan (plan values win). The plan itself is never mutated.
//
// The result returned is the result of the final request attempt made
// during the plan execution, as determined by the retry policy. An
// error is returned if, after any retries, the final attempt ended in
// error: a failure to speak HTTP, a timeout, or policy on the
// HTTPDoer. A non-2XX status code does not by itself result in an
// error; the shortcut verbs layer that policy on top of Do.
//
// The returned Execution is never nil, but contains a nil Response and
// a nil Body if an error occurred. If the returned error is nil, the
// Execution contains a non-nil Response and a non-nil (possibly
// zero-length) Body. If the returned error is non-nil, the Execution's
// Err field references the same error.
func (c *Client) Do(p *request.Plan) (*request.Execution, error) {
	e := request.Execution{
		Plan: p,
	}

	p2, err := c.prepare(p)
	if err != nil {
		e.Err = err
		return &e, err
	}
	e.Plan = p2
	p = p2

	doer := c.doer()
	log := c.logger()

	timeoutPolicy := c.TimeoutPolicy
	if timeoutPolicy == nil {
		timeoutPolicy = timeout.DefaultPolicy
	}

	retryPolicy := c.RetryPolicy
	if retryPolicy == nil {
		retryPolicy = retry.DefaultPolicy
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	handlers.run(BeforeExecutionStart, &e)
	e.Start = time.Now()

RetryLoop:
	for {
		c.sendAndReceive(p, &e, doer, handlers, timeoutPolicy, log)
		if e.Timeout() {
			e.AttemptTimeouts++
			handlers.run(AfterAttemptTimeout, &e)
		}
		handlers.run(AfterAttempt, &e)
		planCtxErr := p.Context().Err()
		if planCtxErr == context.DeadlineExceeded {
			handlers.run(AfterPlanTimeout, &e)
			break
		} else if planCtxErr != nil {
			e.Err = planCtxErr
			break
		} else if retryPolicy.Decide(&e) {
			wait := retryPolicy.Wait(&e)
			log.Debug("retrying request",
				"method", p.Method, "url", p.URL.String(),
				"attempt", e.Attempt, "wait", wait)
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
				break
			case <-p.Context().Done():
				err := p.Context().Err()
				e.Err = urlErrorWrap(p, err)
				if err == context.DeadlineExceeded {
					handlers.run(AfterPlanTimeout, &e)
				}
				break RetryLoop
			}
			e.Response = nil
			e.Err = nil
			e.Body = nil
			e.Attempt++
		} else {
			break
		}
	}

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, &e)
	return &e, e.Err
}

// prepare merges the client's default configuration into the plan:
// a relative plan URL is resolved against BaseURL, and default header
// fields absent from the plan are filled in. The merge is shallow and
// the plan wins on conflicts. The given plan is never mutated; if a
// merge applies, a shallow copy is returned.
func (c *Client) prepare(p *request.Plan) (*request.Plan, error) {
	resolve := c.BaseURL != "" && p.URL != nil && !p.URL.IsAbs()
	mergeHeader := false
	for k := range c.Header {
		if _, ok := p.Header[k]; !ok {
			mergeHeader = true
			break
		}
	}
	if !resolve && !mergeHeader {
		return p, nil
	}

	p2 := new(request.Plan)
	*p2 = *p

	if resolve {
		base, err := urlpkg.Parse(c.BaseURL)
		if err != nil {
			return p, err
		}
		p2.URL = base.ResolveReference(p.URL)
		if p2.Host == p.URL.Host {
			p2.Host = p2.URL.Host
		}
	}

	if mergeHeader {
		h := p.Header.Clone()
		if h == nil {
			h = make(http.Header)
		}
		for k, vs := range c.Header {
			if _, ok := h[k]; !ok {
				h[k] = vs
			}
		}
		p2.Header = h
	}

	return p2, nil
}

func (c *Client) sendAndReceive(p *request.Plan, e *request.Execution, doer HTTPDoer, handlers *HandlerGroup, timeoutPolicy timeout.Policy, log hclog.Logger) {
	ctx, cancel := context.WithTimeout(p.Context(), timeoutPolicy.Timeout(e))
	defer cancel()
	e.Request = p.ToRequest(ctx)
	handlers.run(BeforeAttempt, e)
	log.Debug("sending request",
		"method", e.Request.Method, "url", e.Request.URL.String(),
		"attempt", e.Attempt)
	var err error
	e.Response, err = doer.Do(e.Request)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
		log.Warn("request attempt failed",
			"method", e.Request.Method, "url", e.Request.URL.String(),
			"attempt", e.Attempt, "error", err)
	} else {
		readBody(p, e, handlers)
	}
}

func readBody(p *request.Plan, e *request.Execution, handlers *HandlerGroup) {
	defer func() {
		_ = e.Response.Body.Close()
	}()
	handlers.run(BeforeReadBody, e)
	var err error
	e.Body, err = io.ReadAll(e.Response.Body)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	}
}

// Get issues a GET to the specified URL, using the same policies
// followed by Do. The URL may be relative to the client's BaseURL.
func (c *Client) Get(url string) (*request.Execution, error) {
	return Get(c, url)
}

// Head issues a HEAD to the specified URL, using the same policies
// followed by Do. The returned execution naturally has an empty body;
// inspect its status code and headers.
func (c *Client) Head(url string) (*request.Execution, error) {
	return Head(c, url)
}

// Options issues an OPTIONS to the specified URL, using the same
// policies followed by Do. Inspect the returned execution's status
// code and headers.
func (c *Client) Options(url string) (*request.Execution, error) {
	return Options(c, url)
}

// Delete issues a DELETE to the specified URL, using the same policies
// followed by Do.
func (c *Client) Delete(url string) (*request.Execution, error) {
	return Delete(c, url)
}

// Post issues a POST to the specified URL, using the same policies
// followed by Do.
//
// The body parameter accepts the kinds documented on NormalizeBody:
// raw kinds (string, []byte, io.Reader, io.ReadCloser) pass through
// unchanged, a map is JSON-encoded or converted to multipart form
// encoding depending on contentType, and a *form.Form is used as
// built. A nil or empty body fails with a Missing Payload error before
// any network I/O.
func (c *Client) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(c, url, contentType, body)
}

// Put issues a PUT to the specified URL, following the same body
// normalization and policies as Post.
func (c *Client) Put(url, contentType string, body interface{}) (*request.Execution, error) {
	return Put(c, url, contentType, body)
}

// Patch issues a PATCH to the specified URL, following the same body
// normalization and policies as Post.
func (c *Client) Patch(url, contentType string, body interface{}) (*request.Execution, error) {
	return Patch(c, url, contentType, body)
}

// PostForm issues a POST to the specified URL, with data's keys and
// values URL-encoded as the request body and the Content-Type header
// set to application/x-www-form-urlencoded.
func (c *Client) PostForm(url string, data urlpkg.Values) (*request.Execution, error) {
	return PostForm(c, url, data)
}

// PostMultipart issues a POST to the specified URL with the given
// plain mapping converted to a multipart/form-data body.
func (c *Client) PostMultipart(url string, fields map[string]interface{}) (*request.Execution, error) {
	return PostMultipart(c, url, fields)
}

// SendFile issues a POST to the specified URL with a multipart body
// carrying a single file part. The content parameter accepts the kinds
// documented on request.BodyBytes.
func (c *Client) SendFile(url, field, fileName string, content interface{}) (*request.Execution, error) {
	return SendFile(c, url, field, fileName, content)
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer, if the HTTPDoer has one; otherwise it does
// nothing. The http.Client type forwards the call to its Transport.
func (c *Client) CloseIdleConnections() {
	doer := c.doer()
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}

	return c.HTTPDoer
}

func (c *Client) logger() hclog.Logger {
	if c.Logger == nil {
		return hclog.NewNullLogger()
	}

	return c.Logger
}

func urlErrorWrap(p *request.Plan, err error) error {
	if _, ok := err.(*urlpkg.Error); ok {
		return err
	}

	return &urlpkg.Error{
		Op:  urlErrorOp(p.Method),
		URL: p.URL.String(),
		Err: err,
	}
}

// urlErrorOp formats a method name the way net/http does in url.Error.
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
