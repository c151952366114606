// Package http implements the control API of syncd.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: request tracing, access logging with request metrics, response
// compression and the (host, port) address extraction shared by every
// per-synchronizer route.
package http
