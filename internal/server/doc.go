// Package server runs the syncd control API.
//
// It owns the HTTP listener lifecycle: startup, signal handling and
// graceful shutdown, followed by the shutdown hooks registered by main
// (closing the synchronizer manager, background jobs and the journal).
package server
