// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package failure

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrMissingPayload is the cause of the error returned when a
	// body-bearing verb (POST, PUT, PATCH, file upload) is called with
	// a nil or empty payload.
	ErrMissingPayload = errors.New("missing payload")
)

// Default descriptions for the three normalized failure kinds.
const (
	badRequestText  = "Bad Request"
	unavailableText = "Service Unavailable"
)

// An Error is the uniform error shape produced for every failed
// request, regardless of failure origin.
//
// Status and Code are HTTP-style numeric codes. For a failure that
// produced an error-status response, they mirror the response status
// (or the code reported in the response body, if any). For a request
// that was sent but received no response they are both 503, and for a
// request that could not even be set up they are both 400.
//
// Message is a short human-readable summary, and Description carries
// the longer default text for the failure kind ("Bad Request",
// "Service Unavailable", or the server-provided description).
type Error struct {
	// Status is the normalized HTTP status code of the failure.
	Status int
	// Code is the normalized error code. It usually equals Status but
	// mirrors a distinct server-provided code when one is present in
	// the error response body.
	Code int
	// Message is a short summary of the failure.
	Message string
	// Description is the longer failure text. It defaults to the
	// standard reason phrase for the failure kind and is overridden by
	// a server-provided description when available.
	Description string
	// Err is the underlying cause, if any. It is exposed through
	// Unwrap so errors.Is and errors.As see through the normalization.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Description != "" && e.Description != e.Message {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Message, e.Description)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// Unwrap returns the underlying cause of the normalized error, which
// may be nil.
func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout reports whether the underlying cause of the normalized error
// was a timeout.
func (e *Error) Timeout() bool {
	return Categorize(e.Err) == Timeout
}

// An Option overrides a field of a normalized Error. Options always
// take precedence over both defaults and server-provided values.
type Option func(*Error)

// WithStatus overrides the normalized status.
func WithStatus(status int) Option {
	return func(e *Error) { e.Status = status }
}

// WithCode overrides the normalized code.
func WithCode(code int) Option {
	return func(e *Error) { e.Code = code }
}

// WithMessage overrides the normalized message.
func WithMessage(message string) Option {
	return func(e *Error) { e.Message = message }
}

// WithDescription overrides the normalized description.
func WithDescription(description string) Option {
	return func(e *Error) { e.Description = description }
}

// MissingPayload returns the normalized error for a body-bearing verb
// called without a payload. The returned error matches
// ErrMissingPayload via errors.Is.
func MissingPayload() *Error {
	return &Error{
		Status:      http.StatusBadRequest,
		Code:        http.StatusBadRequest,
		Message:     "Missing Payload",
		Description: "Missing Payload",
		Err:         ErrMissingPayload,
	}
}

// responseBody is the subset of a JSON error response body that feeds
// the normalized error. Servers are not required to send any of these
// fields; absent fields leave the defaults in place.
type responseBody struct {
	Status      int    `json:"status"`
	Code        int    `json:"code"`
	Message     string `json:"message"`
	Error       string `json:"error"`
	Description string `json:"description"`
}

// Normalize builds a normalized *Error from the raw signals of a
// finished request attempt. It decides among three failure kinds by
// which signals are present:
//
// 1. A response was received: the failure mirrors the response status
// (and the code in the response body, when the body carries one), and
// the message and description are taken from the response body when
// present, falling back to the response reason phrase.
//
// 2. A request was sent but no response was received: status and code
// are 503 and the description defaults to "Service Unavailable".
//
// 3. Neither a request nor a response exists, meaning request setup
// itself failed: status and code are 400 and the description defaults
// to "Bad Request".
//
// The cause err, when non-nil, supplies the default message for kinds
// 2 and 3 and is retained as the wrapped cause. Caller-supplied
// options always win over defaults and server-provided values.
func Normalize(req *http.Request, resp *http.Response, body []byte, err error, opts ...Option) *Error {
	var e *Error

	switch {
	case resp != nil && err == nil:
		e = fromResponse(resp, body)
	case req != nil:
		e = &Error{
			Status:      http.StatusServiceUnavailable,
			Code:        http.StatusServiceUnavailable,
			Message:     causeMessage(err, unavailableText),
			Description: unavailableText,
			Err:         err,
		}
	default:
		e = &Error{
			Status:      http.StatusBadRequest,
			Code:        http.StatusBadRequest,
			Message:     causeMessage(err, badRequestText),
			Description: badRequestText,
			Err:         err,
		}
	}

	for _, opt := range opts {
		opt(e)
	}
	return e
}

// fromResponse normalizes an error-status response, mirroring the
// response status and folding in whatever error detail the server put
// in the body.
func fromResponse(resp *http.Response, body []byte) *Error {
	e := &Error{
		Status:      resp.StatusCode,
		Code:        resp.StatusCode,
		Message:     http.StatusText(resp.StatusCode),
		Description: http.StatusText(resp.StatusCode),
	}

	var rb responseBody
	if len(body) == 0 || json.Unmarshal(body, &rb) != nil {
		return e
	}
	if rb.Status != 0 {
		e.Status = rb.Status
	}
	if rb.Code != 0 {
		e.Code = rb.Code
	}
	if rb.Message != "" {
		e.Message = rb.Message
	} else if rb.Error != "" {
		e.Message = rb.Error
	}
	if rb.Description != "" {
		e.Description = rb.Description
	} else if e.Message != http.StatusText(resp.StatusCode) {
		e.Description = e.Message
	}
	return e
}

func causeMessage(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
