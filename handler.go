// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpclient

import (
	"github.com/google/uuid"

	"github.com/lykmapipo/http-client/request"
)

// A HandlerGroup is a group of event handler chains which can be
// installed in a Client.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler
// chain for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("httpclient: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, e *request.Execution) {
	i := int(evt)
	if i < len(g.handlers) {
		for _, h := range g.handlers[i] {
			h.Handle(evt, e)
		}
	}
}

// A Handler handles the occurrence of an event during a request plan
// execution.
type Handler interface {
	Handle(Event, *request.Execution)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with the appropriate
// signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *request.Execution)

// Handle calls f(evt, e).
func (f HandlerFunc) Handle(evt Event, e *request.Execution) {
	f(evt, e)
}

// RequestIDHeader is the header stamped by the request ID handler.
const RequestIDHeader = "X-Request-Id"

// NewRequestIDHandler returns a handler that stamps a fresh UUID into
// the X-Request-Id header of every request attempt, so each attempt is
// individually traceable on the server side. Install it on the
// BeforeAttempt chain, or construct the client with WithRequestID.
func NewRequestIDHandler() Handler {
	return HandlerFunc(func(evt Event, e *request.Execution) {
		if evt != BeforeAttempt || e.Request == nil {
			return
		}
		// The attempt request's header aliases the plan header; clone
		// before stamping so the plan stays untouched.
		e.Request.Header = e.Request.Header.Clone()
		e.Request.Header.Set(RequestIDHeader, uuid.NewString())
	})
}
