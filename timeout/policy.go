// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/lykmapipo/http-client/request"
)

// A Policy directs how to set the timeout for the initial request
// attempt of a plan execution, as well as for any retries.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the next request attempt
	// within the plan execution, given the execution's current state.
	Timeout(e *request.Execution) time.Duration
}

// DefaultPolicy is the default timeout policy: a fixed timeout of 5
// seconds on each attempt.
var DefaultPolicy Policy = Fixed(5 * time.Second)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that sets the same timeout d on
// every attempt, the typical behavior of most retrying HTTP client
// software.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive constructs a timeout policy that varies the next timeout
// when the previous attempt timed out.
//
// Use Adaptive when the remote service exhibits one-off slow responses
// that are best cured by timing out quickly and retrying, but you also
// need protection from retry storms when the service goes through a
// burst of slowness in which most responses are slower than the quick
// timeout.
//
// Parameter usual is the timeout for the initial attempt and for any
// retry whose preceding attempt did not time out. Parameter after
// holds the timeouts used when the previous attempt did time out:
// after[0] following the first timeout of the execution, after[1]
// following the second, and the last element thereafter.
//
// For example, with
//
//	p := Adaptive(200*time.Millisecond, time.Second, 10*time.Second)
//
// the usual timeout is 200 milliseconds, but a retry after the first
// timeout of the execution gets 1 second, and retries after further
// timeouts get 10 seconds.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	return policy(append(p, after...))
}

type policy []time.Duration

func (p policy) Timeout(e *request.Execution) time.Duration {
	if !e.Timeout() {
		return p[0]
	}

	i := e.AttemptTimeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}

	return p[i]
}
