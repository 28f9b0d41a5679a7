// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package failure

import (
	"errors"
	"syscall"
)

// A Category is the transience category of an error, as reported by
// Categorize.
//
// The category Not means a retry after encountering the error is very
// unlikely to succeed. Every other category means the error has some
// prospect of clearing up on a later attempt.
type Category int

const (
	// Not indicates any non-transient error.
	Not Category = iota
	// Timeout indicates a client-side timeout. The server may be
	// temporarily slow, or a later attempt with a longer deadline may
	// succeed.
	//
	// Categorize returns Timeout if the error, or any of its wrapped
	// causes, has a Timeout method reporting true.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (POSIX ECONNREFUSED). Refusal is often temporary, e.g. while the
	// remote service is restarting and not yet listening on its port.
	ConnRefused
	// ConnReset indicates the remote host reset a previously active
	// TCP connection (POSIX ECONNRESET), commonly seen when a service
	// or load balancer goes down mid-response. A retry after a reset
	// has a high probability of success.
	ConnReset
)

// Categorize returns the transience category of the given error. A nil
// error, and any error that is not transient from the perspective of
// completing an HTTP request attempt, both produce Not.
//
// Categorize inspects wrapped causes contained within err, not just
// err itself. It deliberately never consults a Temporary method, whose
// semantics are too loose to act on.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var t interface{ Timeout() bool }
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.ECONNREFUSED:
			return ConnRefused
		}
	}

	return Not
}
