// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package form

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"strings"
)

// A File is a single file part of a multipart form.
type File struct {
	// Name is the form field name of the file part.
	Name string
	// FileName is the file name reported in the part header.
	FileName string
	// Content is the file content.
	Content []byte
}

// A Form is a multipart/form-data request body under construction.
// Build one with New, add fields and files, then pass it to a
// body-bearing verb; it is encoded exactly as constructed, with no
// further conversion.
//
// The zero value is an empty form ready for use. A Form is not safe
// for concurrent use.
type Form struct {
	fields map[string]string
	files  []File
}

// New returns an empty Form.
func New() *Form {
	return &Form{}
}

// FromMap converts a plain mapping into a Form. Values are formatted
// with fmt.Sprint, except []byte values which become file parts named
// after their key. Nil values are skipped.
func FromMap(fields map[string]interface{}) *Form {
	f := New()
	for k, v := range fields {
		switch x := v.(type) {
		case nil:
			// skip
		case []byte:
			f.AddFile(k, k, x)
		default:
			f.Set(k, fmt.Sprint(x))
		}
	}
	return f
}

// Set sets the text field name to value, replacing any existing value.
func (f *Form) Set(name, value string) *Form {
	if f.fields == nil {
		f.fields = make(map[string]string)
	}
	f.fields[name] = value
	return f
}

// AddFile appends a file part to the form.
func (f *Form) AddFile(name, fileName string, content []byte) *Form {
	f.files = append(f.files, File{Name: name, FileName: fileName, Content: content})
	return f
}

// Len returns the number of fields and file parts in the form.
func (f *Form) Len() int {
	return len(f.fields) + len(f.files)
}

// Encode writes the form as multipart/form-data and returns the
// encoded body together with the Content-Type header value carrying
// the part boundary. Text fields are written in sorted key order so
// the encoding is deterministic apart from the boundary.
func (f *Form) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	names := make([]string, 0, len(f.fields))
	for name := range f.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := w.WriteField(name, f.fields[name]); err != nil {
			return nil, "", err
		}
	}

	for _, file := range f.files {
		part, err := w.CreateFormFile(file.Name, file.FileName)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// Reader is a convenience wrapper around Encode returning the encoded
// body as an io.Reader.
func (f *Form) Reader() (io.Reader, string, error) {
	b, contentType, err := f.Encode()
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(b), contentType, nil
}

// IsMultipart reports whether the given content type requests
// multipart encoding, i.e. whether it starts with "multipart/".
func IsMultipart(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "multipart/")
}
