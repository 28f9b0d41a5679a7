// Copyright 2026 The http-client Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines flexible policies for setting attempt
// timeouts during an HTTP request plan execution, including on
// retries. It provides the generic Policy interface along with policy
// generating functions (Fixed, Adaptive) and built-in policies.
package timeout
