// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/lykmapipo/http-client/request"
)

// A Waiter specifies how long to wait before retrying a failed HTTP
// request attempt.
//
// Implementations of Waiter must be safe for concurrent use by
// multiple goroutines.
//
// The client will not consult the Waiter of a retry policy if the
// policy's Decider returned false.
type Waiter interface {
	Wait(e *request.Execution) time.Duration
}

// DefaultWaiter is the default retry wait policy: jittered exponential
// backoff with a base wait of 50 milliseconds and a maximum wait of 1
// second.
var DefaultWaiter = NewExpWaiter(50*time.Millisecond, time.Second, DefaultJitter)

// DefaultJitter is the randomization factor DefaultWaiter applies to
// each computed wait.
const DefaultJitter = 0.5

// NewFixedWaiter constructs a Waiter that always returns the given
// duration, giving a constant retry backoff.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *request.Execution) time.Duration {
	return time.Duration(w)
}

// NewExpWaiter constructs a Waiter implementing exponential backoff
// with optional jitter.
//
// The wait before retrying attempt n doubles from base, capped at max.
// Jitter must be in the range [0, 1): a computed wait w is replaced by
// a random duration in the interval [w*(1-jitter), w*(1+jitter)]. Pass
// 0 for a deterministic waiter that simply returns the capped
// exponential value.
//
// Base and max must be positive, and max must be at least base.
func NewExpWaiter(base, max time.Duration, jitter float64) Waiter {
	if base < 1 {
		panic("http-client/retry: base must be positive")
	}
	if max < base {
		panic("http-client/retry: max must be at least base")
	}
	if jitter < 0 || jitter >= 1 {
		panic("http-client/retry: jitter must be in [0, 1)")
	}
	return &expWaiter{base: base, max: max, jitter: jitter}
}

type expWaiter struct {
	base   time.Duration
	max    time.Duration
	jitter float64
}

// Wait computes the wait for the execution's current attempt. A fresh
// backoff state is built per call, so the waiter itself stays
// stateless and safe for concurrent executions.
func (w *expWaiter) Wait(e *request.Execution) time.Duration {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     w.base,
		RandomizationFactor: w.jitter,
		Multiplier:          2,
		MaxInterval:         w.max,
		MaxElapsedTime:      0,
		Clock:               backoff.SystemClock,
		Stop:                backoff.Stop,
	}
	b.Reset()

	d := b.NextBackOff()
	for i := 0; i < e.Attempt; i++ {
		d = b.NextBackOff()
	}
	return d
}
