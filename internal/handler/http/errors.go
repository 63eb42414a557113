// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors returned by the token middleware. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyTokenHeader is returned when the request has no x-token header
	// or it is empty.
	ErrEmptyTokenHeader = errors.New("empty `x-token` header")

	// ErrInvalidToken is returned when the x-token header does not match the
	// server's token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidJSON is returned for request bodies that do not decode into
	// the endpoint's expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
