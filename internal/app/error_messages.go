// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// control API handlers and middleware.
//
// The Msg* constants are written into response bodies when a request is
// rejected before it reaches a service.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidGZipBody is returned when a request declares
	// Content-Encoding: gzip but its body is not valid gzip.
	MsgInvalidGZipBody = "invalid gzip body"

	// MsgInvalidPort is returned when the {port} path segment is not a number.
	MsgInvalidPort = "invalid port in path"

	// MsgInvalidLimit is returned when the journal limit query parameter
	// is not an unsigned integer.
	MsgInvalidLimit = "invalid limit"

	// MsgEntityIDMismatch is returned when an entity update names a
	// different entity in its body than in its path.
	MsgEntityIDMismatch = "entity id in body does not match path"
)
