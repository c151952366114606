// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net"
	"strconv"
)

// TransportKind selects the network transport a broker connection uses.
type TransportKind string

const (
	// TransportTCP is a plain (or TLS-wrapped) TCP broker connection.
	TransportTCP TransportKind = "tcp"
	// TransportWebSocket is a broker connection tunnelled over WebSocket.
	TransportWebSocket TransportKind = "websocket"
)

// Supported reports whether k is a transport the engine can open.
func (k TransportKind) Supported() bool {
	return k == TransportTCP || k == TransportWebSocket
}

// ConnectionState is the broker connection state of a SynchronizationService.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
	Faulted
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// SynchronizerState is the externally observable state of a Synchronizer.
// It extends ConnectionState with InSession, entered once a session is joined.
type SynchronizerState string

const (
	StateDisconnected SynchronizerState = "disconnected"
	StateConnecting   SynchronizerState = "connecting"
	StateConnected    SynchronizerState = "connected"
	StateInSession    SynchronizerState = "in_session"
	StateFaulted      SynchronizerState = "faulted"
)

// ServiceAddress identifies a broker endpoint. Callers address
// synchronizers by network address rather than by handle.
type ServiceAddress struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// String returns the address in host:port form.
func (a ServiceAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// SynchronizationService describes one broker connection owned by a
// single Synchronizer.
type SynchronizationService struct {
	Host            string          `json:"host"`
	Port            int             `json:"port"`
	UseTLS          bool            `json:"use_tls"`
	TransportKind   TransportKind   `json:"transport"`
	ConnectionState ConnectionState `json:"-"`
}

// Address returns the (host, port) key of the service.
func (s SynchronizationService) Address() ServiceAddress {
	return ServiceAddress{Host: s.Host, Port: s.Port}
}
