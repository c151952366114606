// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import "github.com/MKhiriev/worldsync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_client_mock.go -package=mock

// MessageHandler receives one delivery from the broker. It runs on a
// transport-managed goroutine and must not block.
type MessageHandler func(topic string, payload []byte, qos models.QoS)

// StateHandler observes connection state transitions.
type StateHandler func(from, to models.ConnectionState)

// Client is a QoS-aware publish/subscribe broker client.
//
// Connect is non-blocking: the outcome is reported through the state
// handler (Connecting, then Connected or Faulted). Subscribe and
// Unsubscribe report broker acknowledgement through onAck, which may be
// nil. Publish returns once the payload is handed to the client.
type Client interface {
	Connect() error
	Disconnect()
	Subscribe(filter string, qos models.QoS, onAck func(error), onMessage MessageHandler) error
	Unsubscribe(onAck func(error), filters ...string) error
	Publish(topic string, payload []byte, qos models.QoS) error
	SetStateHandler(handler StateHandler)
}

// Factory builds a Client for a service. The Manager receives one so the
// daemon can pick a backend and tests can use the in-process broker.
type Factory func(svc models.SynchronizationService) (Client, error)
