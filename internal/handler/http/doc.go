// Package http implements the HTTP transport of the conf server.
//
// It exposes two POST endpoints under a configurable prefix, conf_get and
// conf_set, guarded by the shared access token sent in the x-token header.
// Request tracing, access logging and panic recovery are handled here before
// requests reach the service layer.
package http
