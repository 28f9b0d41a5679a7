// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/lykmapipo/http-client/request"
)

// A Policy controls if and how retries are done during an HTTP request
// plan execution: after every attempt it decides whether to retry and,
// if so, how long to wait before doing it.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
//
// A Policy is the composition of the Decider and Waiter interfaces.
// Implement it directly, use one of the built-in policies
// (DefaultPolicy, Never), or compose existing Decider and Waiter
// implementations with NewPolicy.
type Policy interface {
	Decider
	Waiter
}

// DefaultPolicy is a general-purpose retry policy suitable for common
// use cases: DefaultDecider for retry decisions and DefaultWaiter for
// wait times.
var DefaultPolicy Policy = policy{DefaultDecider, DefaultWaiter}

// Never is a policy that never retries. Use it to keep the rest of the
// client's features without retries.
var Never Policy = policy{Times(0), DefaultWaiter}

type policy struct {
	decider Decider
	waiter  Waiter
}

// NewPolicy composes a Decider and a Waiter into a retry Policy.
func NewPolicy(d Decider, w Waiter) Policy {
	return policy{decider: d, waiter: w}
}

func (p policy) Decide(e *request.Execution) bool {
	return p.decider.Decide(e)
}

func (p policy) Wait(e *request.Execution) time.Duration {
	return p.waiter.Wait(e)
}
