// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpclient

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lykmapipo/http-client/request"
)

func TestHandlerGroup(t *testing.T) {
	var evts []string
	var execs []*request.Execution
	h1 := &testHandler{seq: 1, evts: &evts, execs: &execs}
	h2 := &testHandler{seq: 2, evts: &evts, execs: &execs}
	g := &HandlerGroup{}
	t.Run("PushBack", func(t *testing.T) {
		assert.Panics(t, func() { g.PushBack(BeforeExecutionStart, nil) })
		g.PushBack(BeforeExecutionStart, h1)
		g.PushBack(BeforeExecutionStart, h2)
		g.PushBack(AfterAttempt, h1)
	})
	t.Run("run", func(t *testing.T) {
		e1 := &request.Execution{Attempt: 1}
		e2 := &request.Execution{Attempt: 2}
		assert.Empty(t, evts)
		assert.Empty(t, execs)
		g.run(AfterPlanTimeout, e1)
		assert.Empty(t, evts)
		assert.Empty(t, execs)
		g.run(BeforeExecutionStart, e1)
		assert.Equal(t, []string{"1.BeforeExecutionStart", "2.BeforeExecutionStart"}, evts)
		assert.Equal(t, []*request.Execution{e1, e1}, execs)
		evts = evts[:0]
		execs = execs[:0]
		g.run(AfterAttempt, e2)
		assert.Equal(t, []string{"1.AfterAttempt"}, evts)
		assert.Equal(t, []*request.Execution{e2}, execs)
	})
	t.Run("run on empty group", func(t *testing.T) {
		g := &HandlerGroup{}
		assert.NotPanics(t, func() { g.run(AfterAttempt, &request.Execution{}) })
	})
}

type testHandler struct {
	seq   int
	evts  *[]string
	execs *[]*request.Execution
}

func (h *testHandler) Handle(evt Event, e *request.Execution) {
	*h.evts = append(*h.evts, fmt.Sprintf("%d.%s", h.seq, evt))
	*h.execs = append(*h.execs, e)
}

func TestHandlerFunc(t *testing.T) {
	var _evt Event
	var _e *request.Execution
	var f = func(evt Event, e *request.Execution) {
		_evt = evt
		_e = e
	}
	h := HandlerFunc(f)
	e := &request.Execution{}
	h.Handle(BeforeReadBody, e)

	assert.Equal(t, BeforeReadBody, _evt)
	assert.Same(t, e, _e)
}

func TestNewRequestIDHandler(t *testing.T) {
	h := NewRequestIDHandler()

	t.Run("stamps a fresh UUID per attempt", func(t *testing.T) {
		p, err := request.NewPlan("GET", "http://test.local", nil)
		require.NoError(t, err)
		e := &request.Execution{Plan: p, Request: &http.Request{Header: p.Header}}

		h.Handle(BeforeAttempt, e)
		first := e.Request.Header.Get(RequestIDHeader)
		require.NotEmpty(t, first)
		_, err = uuid.Parse(first)
		assert.NoError(t, err)
		assert.Empty(t, p.Header.Get(RequestIDHeader), "plan header untouched")

		h.Handle(BeforeAttempt, e)
		second := e.Request.Header.Get(RequestIDHeader)
		assert.NotEqual(t, first, second)
	})
	t.Run("ignores other events", func(t *testing.T) {
		p, err := request.NewPlan("GET", "http://test.local", nil)
		require.NoError(t, err)
		e := &request.Execution{Plan: p, Request: &http.Request{Header: p.Header}}
		h.Handle(AfterAttempt, e)
		assert.Empty(t, e.Request.Header.Get(RequestIDHeader))
	})
	t.Run("ignores missing request", func(t *testing.T) {
		assert.NotPanics(t, func() { h.Handle(BeforeAttempt, &request.Execution{}) })
	})
}
