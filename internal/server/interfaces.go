package server

import "context"

// Server defines the lifecycle contract of the conf server.
//
// Implementations block in [Server.RunServer] until a stop signal arrives and
// release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns an error when the server could not start or stopped
	// abnormally.
	RunServer() error

	// Run serves until ctx is canceled or serving fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
