// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lykmapipo/http-client/request"
)

func TestFixed(t *testing.T) {
	p := Fixed(750 * time.Millisecond)
	assert.Equal(t, 750*time.Millisecond, p.Timeout(&request.Execution{}))
	e := &request.Execution{Err: timeoutErr{}, AttemptTimeouts: 3}
	assert.Equal(t, 750*time.Millisecond, p.Timeout(e))
}

func TestInfinite(t *testing.T) {
	d := Infinite.Timeout(&request.Execution{})
	assert.Equal(t, time.Duration(1<<63-1), d)
}

func TestDefaultPolicy(t *testing.T) {
	assert.Equal(t, 5*time.Second, DefaultPolicy.Timeout(&request.Execution{}))
}

func TestAdaptive(t *testing.T) {
	p := Adaptive(200*time.Millisecond, time.Second, 10*time.Second)

	t.Run("usual", func(t *testing.T) {
		assert.Equal(t, 200*time.Millisecond, p.Timeout(&request.Execution{}))
		e := &request.Execution{Err: assert.AnError, AttemptTimeouts: 1}
		assert.Equal(t, 200*time.Millisecond, p.Timeout(e))
	})
	t.Run("after timeouts", func(t *testing.T) {
		e := &request.Execution{Err: timeoutErr{}, AttemptTimeouts: 1}
		assert.Equal(t, time.Second, p.Timeout(e))
		e.AttemptTimeouts = 2
		assert.Equal(t, 10*time.Second, p.Timeout(e))
		e.AttemptTimeouts = 9
		assert.Equal(t, 10*time.Second, p.Timeout(e))
	})
	t.Run("no after values", func(t *testing.T) {
		p := Adaptive(time.Second)
		e := &request.Execution{Err: timeoutErr{}, AttemptTimeouts: 4}
		assert.Equal(t, time.Second, p.Timeout(e))
	})
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "deadline exceeded" }
func (timeoutErr) Timeout() bool { return true }
