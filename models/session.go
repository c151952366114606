// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ClientIdentity pairs a service-assigned client id with the display label
// its owner supplied when joining.
type ClientIdentity struct {
	ClientID string `json:"client_id"`
	UserTag  string `json:"user_tag"`
}

// Session is the shared-world context a service participates in.
//
// At most one Session exists per SynchronizationService. LocalClientID is
// empty until the local process has joined.
type Session struct {
	// ID is the session UUID in canonical string form.
	ID string `json:"session_id"`

	// Tag is the human-readable session label.
	Tag string `json:"tag"`

	// Participants lists every client known to be in the session.
	Participants []ClientIdentity `json:"participants"`

	// LocalClientID is the id assigned to this process on join.
	LocalClientID string `json:"local_client_id,omitempty"`
}

// Joined reports whether the local process is a participant.
func (s Session) Joined() bool {
	return s.LocalClientID != ""
}
