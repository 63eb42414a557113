// Package server runs the conf HTTP server.
//
// It owns the listener lifecycle: binding the configured address, publishing
// the bound port through the port file, serving until a stop signal or
// context cancellation, and shutting down gracefully.
package server
