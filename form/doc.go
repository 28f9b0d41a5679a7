// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package form builds multipart/form-data request bodies.

A Form collects text fields and file parts and encodes them with the
standard mime/multipart writer:

	f := form.New().
		Set("name", "quarterly report").
		AddFile("file", "report.pdf", content)
	body, contentType, err := f.Encode()

A plain mapping can be converted wholesale with FromMap, which is what
the body-bearing client verbs do when the caller requests multipart
encoding for a map payload.
*/
package form
