package server

// Server defines the lifecycle contract of syncd's control API server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives or
	// the listener fails. A listener failure is returned.
	RunServer() error

	// Shutdown gracefully stops the listener and then runs the registered
	// shutdown hooks in reverse registration order.
	Shutdown()

	// OnShutdown registers fn to run during Shutdown.
	OnShutdown(fn func())
}
