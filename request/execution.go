// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	"time"

	"github.com/lykmapipo/http-client/failure"
)

// An Execution represents the state of a single Plan execution.
//
// An Execution is created when a plan execution starts, updated as the
// execution progresses (when a response arrives, or a retry is made),
// and ultimately returned as the result of the plan execution.
//
// Timeout and retry policies and event handlers may attach values to
// an Execution with SetValue and read them back with Value, but should
// treat the exported fields as read-only; the execution state drives
// the plan execution logic. Reasonable changes to the http.Request
// before it is sent (e.g. request signing) are the accepted exception.
type Execution struct {
	// Plan specifies the HTTP request plan being executed. It is never
	// nil.
	Plan *Plan

	// Start is the start time of the plan execution, set when the
	// execution starts and constant thereafter.
	Start time.Time

	// End is the end time of the plan execution. It is the zero value
	// until the execution ends.
	End time.Time

	// Attempt is the zero-based number of the current request attempt:
	// zero on the initial attempt, one on the first retry, and so on.
	// After the execution has ended it holds the number of the last
	// attempt made.
	Attempt int

	// AttemptTimeouts counts the request attempts that timed out
	// during the execution. Plan-level timeouts do not increment the
	// counter unless they coincide with an attempt timeout.
	AttemptTimeouts int

	// Request specifies the HTTP request made, or to be made, in the
	// current attempt.
	Request *http.Request

	// Response is the HTTP response received in the most recent
	// attempt. It is nil if the most recent attempt ended in an error,
	// while an attempt is underway, and before the execution starts.
	Response *http.Response

	// Err is the error received in the most recent attempt, nil if the
	// attempt ended without error. While an execution is in flight Err
	// may fluctuate between nil and non-nil values; once the execution
	// has ended it no longer changes and equals the error returned by
	// the executing client method.
	Err error

	// Body is the complete response body read after the most recent
	// attempt. Treat Body as invalid unless Err is nil: a partially
	// successful read can leave both Body and Err non-nil.
	Body []byte

	// data carries arbitrary user values attached by handlers and
	// policies through SetValue/Value.
	data context.Context
}

// StatusCode returns the status code of the HTTP response from the
// most recent attempt, or 0 if there is no response (the attempt ended
// in error, an attempt is underway, or the execution has not started).
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the HTTP response headers from the most recent
// attempt, or nil if there is no response. A nil return value is safe
// for read-only use since http.Header is a map type.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		return nil
	}

	return e.Response.Header
}

// Duration returns the duration of the execution: zero before it
// starts, time elapsed since Start while in flight, and End minus
// Start once ended.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return 0
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started. When it returns
// true, Start holds the execution start time.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended. When it returns
// true, End is non-zero and the execution will not change further.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains an error indicating
// a timeout, whether from a request attempt timeout or from a plan
// timeout detected after the most recent attempt.
func (e *Execution) Timeout() bool {
	return failure.Categorize(e.Err) == failure.Timeout
}

// SetValue attaches an arbitrary value to the execution.
//
// The key follows the same rules as the key parameter of
// context.WithValue: it must be comparable and non-nil, and should not
// be a built-in type, to avoid collisions between handlers.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the value associated with this execution for key, or
// nil if there is none.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
