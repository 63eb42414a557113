// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no HTTP address, so no transport handler exists. The
// application treats it as fatal at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// errEmptyToken is returned by NewHandlers when no access token was
// provisioned. Serving without one would accept nobody.
var errEmptyToken = errors.New("access token is empty")
