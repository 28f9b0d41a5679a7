// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package failure normalizes the many ways an HTTP request can go wrong
into a single uniform error shape.

Regardless of whether a request failed while being set up, failed to
produce any response at all, or produced a response carrying an error
status, the caller always receives an *Error with the same four fields:
Status, Code, Message and Description. Use Normalize to build an Error
from the raw signals of a finished request attempt:

	err := failure.Normalize(req, resp, body, cause)
	var fe *failure.Error
	if errors.As(err, &fe) {
		log.Printf("%d %s", fe.Status, fe.Description)
	}

Package failure also classifies transport errors by their transience
category (Categorize), which the retry machinery uses to decide whether
another attempt has any prospect of success.
*/
package failure
