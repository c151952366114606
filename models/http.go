// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AddSynchronizerRequest asks the daemon to open a new synchronizer.
type AddSynchronizerRequest struct {
	Host      string        `json:"host"`
	Port      int           `json:"port"`
	UseTLS    bool          `json:"use_tls"`
	Transport TransportKind `json:"transport"`
}

// SessionRequest names a session for create and join calls.
type SessionRequest struct {
	SessionID string `json:"session_id"`
	Tag       string `json:"tag"`
}

// EntityRequest adds or updates a locally owned entity.
// EntityID may be empty on add; the daemon then generates one.
type EntityRequest struct {
	EntityID        string      `json:"entity_id,omitempty"`
	State           EntityState `json:"state"`
	DeleteWithOwner bool        `json:"delete_with_owner"`
	ResourceRefs    []string    `json:"resource_refs,omitempty"`
}

// MessageRequest publishes an application message.
// QoS is optional; the configured default applies when nil.
type MessageRequest struct {
	Topic   string `json:"topic"`
	Payload string `json:"payload"`
	QoS     *QoS   `json:"qos,omitempty"`
}
