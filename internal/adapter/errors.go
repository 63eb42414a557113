// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/conf-keeper/models"
)

// ErrTokenUnavailable wraps failures of the [TokenProvider].
var ErrTokenUnavailable = errors.New("access token unavailable")

// TransportError reports a response with a non-2xx HTTP status. The body is
// not interpreted.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ApplicationError reports a 2xx response whose envelope carries a non-zero
// error code. RawCode is the code as the server sent it; Code is
// [models.CodeNonInteger] when that is not an integer.
type ApplicationError struct {
	Code    models.ErrorCode
	RawCode string
	Text    string
}

func (e *ApplicationError) Error() string {
	if e.RawCode == "" {
		return fmt.Sprintf("e %d: %s", e.Code, e.Text)
	}
	return fmt.Sprintf("e %s: %s", e.RawCode, e.Text)
}
