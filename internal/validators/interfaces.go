// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks control API requests before they reach a
// synchronizer.
//
// A Validator dispatches on the dynamic type of the value it is given and
// may be scoped to a subset of fields, e.g. only the session id of a
// SessionRequest. Validation errors are sentinels of this package so the
// HTTP layer can map them to 400 responses.
package validators

import "context"

// Validator validates an arbitrary request value, optionally restricted to
// the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
