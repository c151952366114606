// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoControlAPI is returned by NewServer when there is no control API
// router or listen address to serve.
var errNoControlAPI = errors.New("server: no control API handler or address configured")
