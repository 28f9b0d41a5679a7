// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package failure

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	req := &http.Request{Method: "GET"}

	t.Run("setup failure", func(t *testing.T) {
		t.Run("without cause", func(t *testing.T) {
			e := Normalize(nil, nil, nil, nil)
			require.NotNil(t, e)
			assert.Equal(t, 400, e.Status)
			assert.Equal(t, 400, e.Code)
			assert.Equal(t, "Bad Request", e.Message)
			assert.Equal(t, "Bad Request", e.Description)
			assert.NoError(t, e.Err)
		})
		t.Run("with cause", func(t *testing.T) {
			cause := errors.New("parse \":\": missing protocol scheme")
			e := Normalize(nil, nil, nil, cause)
			assert.Equal(t, 400, e.Status)
			assert.Equal(t, 400, e.Code)
			assert.Equal(t, cause.Error(), e.Message)
			assert.Equal(t, "Bad Request", e.Description)
			assert.Same(t, cause, e.Err)
			assert.ErrorIs(t, e, cause)
		})
	})

	t.Run("no response", func(t *testing.T) {
		t.Run("with cause", func(t *testing.T) {
			cause := errors.New("dial tcp: connection refused")
			e := Normalize(req, nil, nil, cause)
			assert.Equal(t, 503, e.Status)
			assert.Equal(t, 503, e.Code)
			assert.Equal(t, cause.Error(), e.Message)
			assert.Equal(t, "Service Unavailable", e.Description)
			assert.ErrorIs(t, e, cause)
		})
		t.Run("without cause", func(t *testing.T) {
			e := Normalize(req, nil, nil, nil)
			assert.Equal(t, 503, e.Status)
			assert.Equal(t, "Service Unavailable", e.Message)
			assert.Equal(t, "Service Unavailable", e.Description)
		})
		t.Run("response discarded on read error", func(t *testing.T) {
			// A response whose body could not be read counts as no
			// response at all.
			cause := errors.New("unexpected EOF")
			resp := &http.Response{StatusCode: 200}
			e := Normalize(req, resp, nil, cause)
			assert.Equal(t, 503, e.Status)
			assert.ErrorIs(t, e, cause)
		})
	})

	t.Run("error response", func(t *testing.T) {
		resp := func(status int) *http.Response {
			return &http.Response{StatusCode: status}
		}
		t.Run("empty body", func(t *testing.T) {
			e := Normalize(req, resp(404), nil, nil)
			assert.Equal(t, 404, e.Status)
			assert.Equal(t, 404, e.Code)
			assert.Equal(t, "Not Found", e.Message)
			assert.Equal(t, "Not Found", e.Description)
			assert.NoError(t, e.Err)
		})
		t.Run("non-JSON body", func(t *testing.T) {
			e := Normalize(req, resp(500), []byte("<html>boom</html>"), nil)
			assert.Equal(t, 500, e.Status)
			assert.Equal(t, "Internal Server Error", e.Message)
		})
		t.Run("body message", func(t *testing.T) {
			body := []byte(`{"message":"token expired"}`)
			e := Normalize(req, resp(401), body, nil)
			assert.Equal(t, 401, e.Status)
			assert.Equal(t, 401, e.Code)
			assert.Equal(t, "token expired", e.Message)
			assert.Equal(t, "token expired", e.Description)
		})
		t.Run("body error key", func(t *testing.T) {
			body := []byte(`{"error":"invalid_grant"}`)
			e := Normalize(req, resp(400), body, nil)
			assert.Equal(t, "invalid_grant", e.Message)
		})
		t.Run("body code and status win over response status", func(t *testing.T) {
			body := []byte(`{"status":422,"code":42201,"message":"name is required","description":"the name field must not be blank"}`)
			e := Normalize(req, resp(400), body, nil)
			assert.Equal(t, 422, e.Status)
			assert.Equal(t, 42201, e.Code)
			assert.Equal(t, "name is required", e.Message)
			assert.Equal(t, "the name field must not be blank", e.Description)
		})
	})

	t.Run("options win over everything", func(t *testing.T) {
		body := []byte(`{"status":500,"message":"boom"}`)
		e := Normalize(req, &http.Response{StatusCode: 500}, body, nil,
			WithStatus(502), WithCode(50201), WithMessage("upstream failed"),
			WithDescription("the upstream dependency did not answer"))
		assert.Equal(t, 502, e.Status)
		assert.Equal(t, 50201, e.Code)
		assert.Equal(t, "upstream failed", e.Message)
		assert.Equal(t, "the upstream dependency did not answer", e.Description)
	})
}

func TestMissingPayload(t *testing.T) {
	e := MissingPayload()
	assert.Equal(t, 400, e.Status)
	assert.Equal(t, 400, e.Code)
	assert.Equal(t, "Missing Payload", e.Message)
	assert.Equal(t, "Missing Payload", e.Description)
	assert.ErrorIs(t, e, ErrMissingPayload)
}

func TestError_Error(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		e := &Error{Status: 404, Message: "Not Found", Description: "Not Found"}
		assert.Equal(t, "404 Not Found", e.Error())
	})
	t.Run("distinct description", func(t *testing.T) {
		e := &Error{Status: 422, Message: "name is required", Description: "the name field must not be blank"}
		assert.Equal(t, "422 name is required: the name field must not be blank", e.Error())
	})
}

func TestError_Timeout(t *testing.T) {
	assert.False(t, (&Error{}).Timeout())
	assert.False(t, (&Error{Err: errors.New("boom")}).Timeout())
	assert.True(t, (&Error{Err: timeoutErr{}}).Timeout())
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "deadline exceeded" }
func (timeoutErr) Timeout() bool { return true }
