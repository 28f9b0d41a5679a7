// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpclient

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// plan execution starts. When it fires, the execution is non-nil
	// but only its plan field has been set.
	BeforeExecutionStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual request attempt. When it fires, the execution's
	// request field holds the http.Request that will be sent once all
	// BeforeAttempt handlers have finished.
	//
	// BeforeAttempt handlers may modify the request, changing what is
	// sent, but should clone reference-typed fields (URL and Header)
	// before changing them: those fields initially alias the
	// same-named fields of the plan.
	BeforeAttempt
	// BeforeReadBody identifies the event that occurs after a request
	// attempt produced an HTTP response (as opposed to an error) but
	// before the response body is read and buffered. It fires for
	// every received response, regardless of status code and of
	// whether the response has a body; it never fires for an attempt
	// that ended in error.
	BeforeReadBody
	// AfterAttemptTimeout identifies the event that occurs after a
	// request attempt failed with a timeout error. When it fires, the
	// execution's error field holds the timeout error and its attempt
	// timeout counter has been incremented.
	AfterAttemptTimeout
	// AfterAttempt identifies the event that occurs after a request
	// attempt concluded, successfully or not. At least one of the
	// execution's response and error fields is non-nil; both are
	// non-nil only when reading the response body failed. AfterAttempt
	// fires on every attempt, before the retry policy is consulted.
	AfterAttempt
	// AfterPlanTimeout identifies the event that occurs after the
	// deadline on the plan's own context is exceeded, which can be
	// detected together with an attempt timeout or during the retry
	// wait period. When it fires, the execution's response and body
	// fields are both nil. It always fires after AfterAttempt.
	AfterPlanTimeout
	// AfterExecutionEnd identifies the event that occurs after the
	// plan execution ends. The execution is in the state left by the
	// final attempt, except that its end time has been set.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of event types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"BeforeReadBody",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"AfterPlanTimeout",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur during
// a plan execution, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		BeforeReadBody,
		AfterAttemptTimeout,
		AfterAttempt,
		AfterPlanTimeout,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
