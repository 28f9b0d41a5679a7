// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lykmapipo/http-client/request"
)

func TestNewFixedWaiter(t *testing.T) {
	w := NewFixedWaiter(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, w.Wait(&request.Execution{Attempt: 0}))
	assert.Equal(t, 250*time.Millisecond, w.Wait(&request.Execution{Attempt: 7}))
}

func TestNewExpWaiter(t *testing.T) {
	t.Run("bad arguments", func(t *testing.T) {
		assert.Panics(t, func() { NewExpWaiter(0, time.Second, 0) })
		assert.Panics(t, func() { NewExpWaiter(time.Second, time.Millisecond, 0) })
		assert.Panics(t, func() { NewExpWaiter(time.Millisecond, time.Second, -0.1) })
		assert.Panics(t, func() { NewExpWaiter(time.Millisecond, time.Second, 1.0) })
	})
	t.Run("no jitter", func(t *testing.T) {
		w := NewExpWaiter(50*time.Millisecond, 400*time.Millisecond, 0)
		expected := []time.Duration{
			50 * time.Millisecond,
			100 * time.Millisecond,
			200 * time.Millisecond,
			400 * time.Millisecond,
			400 * time.Millisecond,
		}
		for attempt, d := range expected {
			assert.Equal(t, d, w.Wait(&request.Execution{Attempt: attempt}), "attempt %d", attempt)
		}
	})
	t.Run("jitter bounds", func(t *testing.T) {
		w := NewExpWaiter(100*time.Millisecond, time.Second, 0.5)
		for i := 0; i < 50; i++ {
			d := w.Wait(&request.Execution{Attempt: 0})
			assert.GreaterOrEqual(t, d, 50*time.Millisecond)
			assert.LessOrEqual(t, d, 150*time.Millisecond)
		}
	})
	t.Run("stateless across executions", func(t *testing.T) {
		w := NewExpWaiter(50*time.Millisecond, time.Second, 0)
		assert.Equal(t, 200*time.Millisecond, w.Wait(&request.Execution{Attempt: 2}))
		assert.Equal(t, 50*time.Millisecond, w.Wait(&request.Execution{Attempt: 0}))
		assert.Equal(t, 200*time.Millisecond, w.Wait(&request.Execution{Attempt: 2}))
	})
}

func TestDefaultWaiter(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		d := DefaultWaiter.Wait(&request.Execution{Attempt: attempt})
		assert.Greater(t, d, time.Duration(0))
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}
