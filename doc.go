// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httpclient is a thin convenience layer over an HTTP transport:
it merges default configuration (base URL from the environment,
default JSON headers) with caller options, offers shortcut verbs, and
normalizes every failure into a uniform error shape.

Build a client once with New and reuse it:

	client, err := httpclient.New()
	...
	e, err := client.Get("/users")
	...
	e, err = client.Post("/users", "application/json",
		map[string]interface{}{"name": "ann"})

With BASE_URL (or REACT_APP_BASE_URL) set in the environment or in a
.env file, relative URLs resolve against it. Every error returned by
the shortcut verbs is a *failure.Error carrying Status, Code, Message
and Description, regardless of whether the request could not be set
up (400), got no response (503), or got an error-status response
(mirrored):

	e, err := client.Get("/users/42")
	var fe *failure.Error
	if errors.As(err, &fe) {
		fmt.Println(fe.Status, fe.Description)
	}

Body-bearing verbs normalize their payload: a map is JSON-encoded, or
converted to multipart form encoding when the content type asks for it
(see PostMultipart, SendFile and package form); raw kinds (string,
[]byte, io.Reader) pass through unchanged. A nil or empty payload is
rejected with a "Missing Payload" error before any network I/O.

For control over how requests are sent, set a custom HTTPDoer:

	client, err := httpclient.New(
		httpclient.WithHTTPDoer(&http.Client{...}),
	)

For control over retry decisions and timing, use package retry:

	w := retry.NewExpWaiter(250*time.Millisecond, 5*time.Second, 0.5)
	client, err := httpclient.New(
		httpclient.WithRetryPolicy(retry.NewPolicy(retry.DefaultDecider, w)),
	)

For control over individual attempt timeouts, use package timeout:

	client, err := httpclient.New(
		httpclient.WithTimeoutPolicy(timeout.Fixed(10 * time.Second)),
	)

To hook into the fine-grained details of request execution, install a
handler into the appropriate handler chain:

	handlers := &httpclient.HandlerGroup{}
	handlers.PushBack(httpclient.BeforeAttempt, httpclient.HandlerFunc(
		func(_ httpclient.Event, e *request.Execution) {
			log.Printf("attempt %d to %s", e.Attempt, e.Request.URL)
		}))
	client, err := httpclient.New(httpclient.WithHandlers(handlers))

Package httpclient provides basic interfaces for each method of the
client (Doer, Getter, Header, Optioner, Deleter, Poster, Putter,
Patcher, FormPoster, MultipartPoster, FileSender, and IdleCloser); a
combined interface composing all of them (Executor); and utility
functions for working with any Doer (Inflate and the package-level
verb functions).
*/
package httpclient
