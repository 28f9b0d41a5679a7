// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides flexible policies for retrying failed
// attempts during an HTTP request plan execution, and for how long to
// wait before retrying.
//
// The interface Policy defines a retry policy. Construct one with
// NewPolicy from a decision-maker, Decider, and a wait time
// calculator, Waiter. Both have constructors for common cases, so a
// useful policy is quickly assembled:
//
//	d := retry.Times(3).
//	         And(retry.Before(5 * time.Second)).
//	         And(retry.StatusCode(500).Or(retry.TransientErr))
//	w := retry.NewExpWaiter(100*time.Millisecond, 2*time.Second, 0.5)
//	policy := retry.NewPolicy(d, w)
//
// If the built-in functionality is insufficient, implement Decider,
// Waiter, or Policy directly.
package retry
