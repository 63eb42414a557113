package adapter

import (
	"context"
	"encoding/json"
)

// TokenProvider returns the access token for one request. It is invoked on
// every call and may perform I/O.
type TokenProvider func(ctx context.Context) (string, error)

// ConfAdapter is the client view of the conf API.
type ConfAdapter interface {
	// Call posts body to path and returns the decoded response object.
	Call(ctx context.Context, path string, body any) (map[string]json.RawMessage, error)

	// ConfGet reads the named entries.
	ConfGet(ctx context.Context, names []string) (map[string]json.RawMessage, error)

	// ConfSet writes entries in one transaction.
	ConfSet(ctx context.Context, entries map[string]json.RawMessage) (map[string]json.RawMessage, error)
}
