package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/conf-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/store_mock.go -package=mock

// Backend is an ordered key-value database holding JSON documents.
type Backend interface {
	// GetMany returns one value per requested key, in request order. A nil
	// entry means the key is absent. Calls with more keys than the backend
	// accepts fail with ErrTooManyKeys.
	GetMany(ctx context.Context, keys []Key) ([]json.RawMessage, error)
	// Atomic opens a transaction whose staged writes become visible all at
	// once on a successful Commit.
	Atomic() Transaction
	Close() error
}

// Transaction stages writes until Commit.
type Transaction interface {
	Set(key Key, value json.RawMessage)
	// Commit applies every staged write or none of them. The boolean is
	// false when the backend did not apply the transaction.
	Commit(ctx context.Context) (bool, error)
}

// ConfReader is the read side of [ConfStore].
type ConfReader interface {
	Get(ctx context.Context, names []string) (models.ConfEntries, error)
}

// ConfWriter is the write side of [ConfStore].
type ConfWriter interface {
	Set(ctx context.Context, entries map[string]json.RawMessage) error
}

// ErrorClassificator decides whether a failed database operation was a
// transient conflict.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
