// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpclient

import (
	"encoding/json"
	urlpkg "net/url"

	"github.com/lykmapipo/http-client/failure"
	"github.com/lykmapipo/http-client/form"
	"github.com/lykmapipo/http-client/request"
)

// Doer is the interface that wraps the basic Do method.
//
// Do executes an HTTP request plan and returns the final execution
// state (and error, if any). Client implements Doer, and any other
// implementation must behave substantially the same as Client.Do.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Doer interface {
	Do(p *request.Plan) (*request.Execution, error)
}

// Getter is the interface that wraps the basic Get method. Client
// implements Getter; any Doer can emulate one via the Get function.
type Getter interface {
	Get(url string) (*request.Execution, error)
}

// Header is the interface that wraps the basic Head method. Client
// implements Header; any Doer can emulate one via the Head function.
type Header interface {
	Head(url string) (*request.Execution, error)
}

// Optioner is the interface that wraps the basic Options method.
// Client implements Optioner; any Doer can emulate one via the Options
// function.
type Optioner interface {
	Options(url string) (*request.Execution, error)
}

// Deleter is the interface that wraps the basic Delete method. Client
// implements Deleter; any Doer can emulate one via the Delete
// function.
type Deleter interface {
	Delete(url string) (*request.Execution, error)
}

// Poster is the interface that wraps the basic Post method.
//
// The body parameter accepts the kinds documented on NormalizeBody.
// Client implements Poster; any Doer can emulate one via the Post
// function.
type Poster interface {
	Post(url, contentType string, body interface{}) (*request.Execution, error)
}

// Putter is the interface that wraps the basic Put method. Client
// implements Putter; any Doer can emulate one via the Put function.
type Putter interface {
	Put(url, contentType string, body interface{}) (*request.Execution, error)
}

// Patcher is the interface that wraps the basic Patch method. Client
// implements Patcher; any Doer can emulate one via the Patch function.
type Patcher interface {
	Patch(url, contentType string, body interface{}) (*request.Execution, error)
}

// FormPoster is the interface that wraps the basic PostForm method,
// which sends data's keys and values URL-encoded with content type
// application/x-www-form-urlencoded. Client implements FormPoster; any
// Doer can emulate one via the PostForm function.
type FormPoster interface {
	PostForm(url string, data urlpkg.Values) (*request.Execution, error)
}

// MultipartPoster is the interface that wraps the basic PostMultipart
// method, which converts a plain mapping to a multipart/form-data
// body. Client implements MultipartPoster; any Doer can emulate one
// via the PostMultipart function.
type MultipartPoster interface {
	PostMultipart(url string, fields map[string]interface{}) (*request.Execution, error)
}

// FileSender is the interface that wraps the basic SendFile method,
// which uploads a single file as a multipart/form-data body. Client
// implements FileSender; any Doer can emulate one via the SendFile
// function.
type FileSender interface {
	SendFile(url, field, fileName string, content interface{}) (*request.Execution, error)
}

// IdleCloser is the interface that wraps the basic
// CloseIdleConnections method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes connections sitting idle in a "keep-alive" state, without
// interrupting any connections currently in use. If the implementation
// does not support it, CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Executor is the interface that groups the basic Do method, all the
// shortcut verbs, and CloseIdleConnections.
//
// Any Doer can be converted into an Executor via the Inflate function.
type Executor interface {
	Doer
	Getter
	Header
	Optioner
	Deleter
	Poster
	Putter
	Patcher
	FormPoster
	MultipartPoster
	FileSender
	IdleCloser
}

// Get uses the specified Doer to issue a GET to the specified URL.
func Get(d Doer, url string) (*request.Execution, error) {
	return bodiless(d, "GET", url)
}

// Head uses the specified Doer to issue a HEAD to the specified URL.
func Head(d Doer, url string) (*request.Execution, error) {
	return bodiless(d, "HEAD", url)
}

// Options uses the specified Doer to issue an OPTIONS to the specified
// URL.
func Options(d Doer, url string) (*request.Execution, error) {
	return bodiless(d, "OPTIONS", url)
}

// Delete uses the specified Doer to issue a DELETE to the specified
// URL.
func Delete(d Doer, url string) (*request.Execution, error) {
	return bodiless(d, "DELETE", url)
}

// Post uses the specified Doer to issue a POST to the specified URL.
//
// The body parameter accepts the kinds documented on NormalizeBody. A
// nil or empty payload fails with a Missing Payload error before any
// plan construction or network I/O.
func Post(d Doer, url, contentType string, body interface{}) (*request.Execution, error) {
	return send(d, "POST", url, contentType, body)
}

// Put uses the specified Doer to issue a PUT to the specified URL,
// following the same body normalization as Post.
func Put(d Doer, url, contentType string, body interface{}) (*request.Execution, error) {
	return send(d, "PUT", url, contentType, body)
}

// Patch uses the specified Doer to issue a PATCH to the specified URL,
// following the same body normalization as Post.
func Patch(d Doer, url, contentType string, body interface{}) (*request.Execution, error) {
	return send(d, "PATCH", url, contentType, body)
}

// PostForm uses the specified Doer to issue a POST to the specified
// URL, with data's keys and values URL-encoded as the request body and
// the content type set to application/x-www-form-urlencoded.
func PostForm(d Doer, url string, data urlpkg.Values) (*request.Execution, error) {
	return send(d, "POST", url, "application/x-www-form-urlencoded", data)
}

// PostMultipart uses the specified Doer to issue a POST to the
// specified URL with the given plain mapping converted to a
// multipart/form-data body (see form.FromMap).
func PostMultipart(d Doer, url string, fields map[string]interface{}) (*request.Execution, error) {
	return send(d, "POST", url, "multipart/form-data", fields)
}

// SendFile uses the specified Doer to issue a POST to the specified
// URL with a multipart body carrying a single file part named field.
// The content parameter accepts the kinds documented on
// request.BodyBytes; nil or empty content fails with a Missing Payload
// error before any network I/O.
func SendFile(d Doer, url, field, fileName string, content interface{}) (*request.Execution, error) {
	b, err := request.BodyBytes(content)
	if err != nil {
		return nil, failure.Normalize(nil, nil, nil, err)
	}
	if len(b) == 0 {
		return nil, failure.MissingPayload()
	}
	f := form.New().AddFile(field, fileName, b)
	return send(d, "POST", url, "", f)
}

// NormalizeBody converts a generic body parameter into the byte slice
// and content type to send:
//
// • a *form.Form is encoded as built, and its multipart content type
// (carrying the part boundary) replaces contentType;
//
// • a map[string]interface{} is converted to multipart form encoding
// when contentType requests it (starts with "multipart/"), and is
// JSON-encoded otherwise, defaulting the content type to
// application/json;
//
// • url.Values are URL-encoded with content type
// application/x-www-form-urlencoded;
//
// • every other kind (nil, string, []byte, io.Reader, io.ReadCloser)
// passes through request.BodyBytes untouched, keeping contentType.
func NormalizeBody(body interface{}, contentType string) ([]byte, string, error) {
	switch x := body.(type) {
	case *form.Form:
		return encodeForm(x)
	case map[string]interface{}:
		if form.IsMultipart(contentType) {
			return encodeForm(form.FromMap(x))
		}
		b, err := json.Marshal(x)
		if err != nil {
			return nil, "", err
		}
		if contentType == "" {
			contentType = "application/json"
		}
		return b, contentType, nil
	case urlpkg.Values:
		return []byte(x.Encode()), "application/x-www-form-urlencoded", nil
	default:
		b, err := request.BodyBytes(body)
		if err != nil {
			return nil, "", err
		}
		return b, contentType, nil
	}
}

func encodeForm(f *form.Form) ([]byte, string, error) {
	if f == nil {
		return nil, "", nil
	}
	return f.Encode()
}

// send issues a body-bearing request: it rejects a missing payload,
// normalizes the body, builds the plan, and executes it with
// normalized failures.
func send(d Doer, method, url, contentType string, body interface{}) (*request.Execution, error) {
	if emptyPayload(body) {
		return nil, failure.MissingPayload()
	}
	b, ct, err := NormalizeBody(body, contentType)
	if err != nil {
		return nil, failure.Normalize(nil, nil, nil, err)
	}
	if len(b) == 0 {
		return nil, failure.MissingPayload()
	}
	p, err := request.NewPlan(method, url, b)
	if err != nil {
		return nil, failure.Normalize(nil, nil, nil, err)
	}
	if ct != "" {
		p.Header.Set("Content-Type", ct)
	}
	return run(d, p)
}

// bodiless issues a request without a body.
func bodiless(d Doer, method, url string) (*request.Execution, error) {
	p, err := request.NewPlan(method, url, nil)
	if err != nil {
		return nil, failure.Normalize(nil, nil, nil, err)
	}
	return run(d, p)
}

// emptyPayload reports whether a body-bearing verb was called with a
// payload that is knowably empty before any encoding happens. Reader
// kinds are settled after buffering instead.
func emptyPayload(body interface{}) bool {
	switch x := body.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []byte:
		return len(x) == 0
	case map[string]interface{}:
		return len(x) == 0
	case urlpkg.Values:
		return len(x) == 0
	case *form.Form:
		return x == nil || x.Len() == 0
	default:
		return false
	}
}

// run executes a prepared plan on the Doer and normalizes every
// failure into a *failure.Error: a transport error that never produced
// a request is a request-setup failure, a sent request without a
// usable response is a no-response failure, and a completed response
// with an error status (>= 400) mirrors the response. A successful
// execution with a non-error status returns a nil error.
func run(d Doer, p *request.Plan) (*request.Execution, error) {
	e, err := d.Do(p)
	if err != nil {
		if e == nil || (e.Request == nil && e.Response == nil) {
			return e, failure.Normalize(nil, nil, nil, err)
		}
		return e, failure.Normalize(e.Request, e.Response, e.Body, err)
	}
	if e != nil && e.StatusCode() >= 400 {
		return e, failure.Normalize(e.Request, e.Response, e.Body, nil)
	}
	return e, nil
}

// Inflate converts any non-nil Doer into an Executor. This helps with
// interop across library boundaries, when code that only has a Doer
// needs to call a function that requires an Executor.
func Inflate(d Doer) Executor {
	if d == nil {
		panic("httpclient: nil doer")
	}

	if e, ok := d.(Executor); ok {
		return e
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Do(p *request.Plan) (*request.Execution, error) {
	return i.doer.Do(p)
}

func (i inflated) Get(url string) (*request.Execution, error) {
	return Get(i.doer, url)
}

func (i inflated) Head(url string) (*request.Execution, error) {
	return Head(i.doer, url)
}

func (i inflated) Options(url string) (*request.Execution, error) {
	return Options(i.doer, url)
}

func (i inflated) Delete(url string) (*request.Execution, error) {
	return Delete(i.doer, url)
}

func (i inflated) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(i.doer, url, contentType, body)
}

func (i inflated) Put(url, contentType string, body interface{}) (*request.Execution, error) {
	return Put(i.doer, url, contentType, body)
}

func (i inflated) Patch(url, contentType string, body interface{}) (*request.Execution, error) {
	return Patch(i.doer, url, contentType, body)
}

func (i inflated) PostForm(url string, data urlpkg.Values) (*request.Execution, error) {
	return PostForm(i.doer, url, data)
}

func (i inflated) PostMultipart(url string, fields map[string]interface{}) (*request.Execution, error) {
	return PostMultipart(i.doer, url, fields)
}

func (i inflated) SendFile(url, field, fileName string, content interface{}) (*request.Execution, error) {
	return SendFile(i.doer, url, field, fileName, content)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
