// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Plan (describes a logical HTTP
request) and Execution (describes a Plan execution).

A Plan describes how to make a logical HTTP request, potentially
involving repeated request attempts if a failed attempt is retried. For
those familiar with net/http, a Plan looks like a stripped-down
http.Request with server-side fields removed and the body replaced by a
pre-buffered []byte, so every attempt can resend it. Plan fields are
named and typed consistently with http.Request wherever possible.

	p, err := request.NewPlan("GET", "https://example.com", nil)
	...
	e, err := client.Do(p)
	...

A plan may be given a context to bound or cancel the entire plan
execution:

	p, err := request.NewPlanWithContext(ctx, "POST", "https://example.com/upload", body)
	...

A deadline on the plan context is distinct from the per-attempt
deadlines dictated by the client's timeout.Policy: an attempt timeout
is potentially retryable, a plan timeout is not.

An Execution is both the output of the client's plan executing methods
and the input to the callbacks run during execution: timeout policies,
retry policies, and event handlers. Execution instances are allocated
by the client's plan execution logic, not by callers.
*/
package request
