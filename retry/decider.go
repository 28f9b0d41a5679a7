// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"time"

	"github.com/lykmapipo/http-client/failure"
	"github.com/lykmapipo/http-client/request"
)

// A Decider decides if a retry should be done.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in constructors Times, StatusCode, and Before, and the
// built-in decider TransientErr; or implement your own. Use
// DeciderFunc to convert an ordinary function into a Decider and to
// compose deciders logically with DeciderFunc.And and DeciderFunc.Or.
type Decider interface {
	Decide(e *request.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It implements the Decider interface and
// provides the logical composition methods And and Or, so it is often
// more convenient to work with than Decider itself.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
type DeciderFunc func(e *request.Execution) bool

// DefaultTimes is the number of times DefaultPolicy will retry.
const DefaultTimes = 5

// DefaultDecider is a general-purpose retry decider suitable for
// common use cases. It allows up to DefaultTimes retries, retrying on
// a transient error (TransientErr) or on a response carrying one of
// the status codes 429 (Too Many Requests), 502 (Bad Gateway), 503
// (Service Unavailable), or 504 (Gateway Timeout).
var DefaultDecider = Times(DefaultTimes).And(StatusCode(
	http.StatusTooManyRequests,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
).Or(TransientErr))

// TransientErr is a decider that indicates a retry if the current
// error is transient according to failure.Categorize.
//
// TransientErr only looks at the error, so it always returns false
// when a valid HTTP response was received. Compose it with other
// deciders, such as one constructed with StatusCode, for more complex
// behavior.
var TransientErr DeciderFunc = transientErr

// Decide returns true if a retry should be done, and false otherwise,
// after examining the current plan execution state.
func (f DeciderFunc) Decide(e *request.Execution) bool {
	return f(e)
}

// And composes two retry deciders into a new decider which returns
// true only if both sub-deciders return true. Short-circuit logic is
// used, so g is not evaluated if f returns false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) && g(e)
	}
}

// Or composes two retry deciders into a new decider which returns true
// if either sub-decider returns true. Short-circuit logic is used, so
// g is not evaluated if f returns true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) || g(e)
	}
}

// Times constructs a retry decider which allows up to n retries: it
// returns true while the execution attempt index e.Attempt is less
// than n, and false otherwise.
func Times(n int) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Attempt < n
	}
}

// Before constructs a retry decider allowing retries until a certain
// amount of time has elapsed since the start of the plan execution: it
// returns true while the execution duration is less than d, and false
// afterward.
func Before(d time.Duration) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Duration() < d
	}
}

// StatusCode constructs a retry decider allowing retries based on the
// HTTP response status code: it returns true if the most recent
// attempt received a valid HTTP response whose status code is in ss.
func StatusCode(ss ...int) DeciderFunc {
	ss2 := make([]int, len(ss))
	copy(ss2, ss)
	return func(e *request.Execution) bool {
		for _, s := range ss2 {
			if e.StatusCode() == s {
				return true
			}
		}
		return false
	}
}

func transientErr(e *request.Execution) bool {
	return failure.Categorize(e.Err) != failure.Not
}
