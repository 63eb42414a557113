package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble/v2"
	"github.com/cockroachdb/pebble/v2/vfs"

	"github.com/MKhiriev/conf-keeper/internal/logger"
)

// pebbleBackend stores entries in a pebble LSM database. Reads of one
// GetMany call share a snapshot; a transaction is a single pebble batch.
type pebbleBackend struct {
	db      *pebble.DB
	maxKeys int
	logger  *logger.Logger
}

// NewPebbleBackend opens (creating if needed) a pebble database in dir. An
// empty dir opens an in-memory database.
func NewPebbleBackend(dir string, maxKeys int, log *logger.Logger) (Backend, error) {
	options := &pebble.Options{
		LoggerAndTracer: pebbleLogger{log},
	}
	if dir == "" {
		options.FS = vfs.NewMem()
	}

	db, err := pebble.Open(dir, options)
	if err != nil {
		log.Err(err).Str("func", "NewPebbleBackend").Str("dir", dir).Msg("error opening pebble database")
		return nil, fmt.Errorf("pebble: error opening database at %q: %w", dir, err)
	}
	log.Debug().Str("func", "NewPebbleBackend").Str("dir", dir).Msg("opened pebble database")

	if maxKeys < 1 {
		maxKeys = DefaultMaxReadKeys
	}
	return &pebbleBackend{db: db, maxKeys: maxKeys, logger: log}, nil
}

func (b *pebbleBackend) GetMany(ctx context.Context, keys []Key) ([]json.RawMessage, error) {
	if len(keys) > b.maxKeys {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyKeys, len(keys), b.maxKeys)
	}

	snapshot := b.db.NewSnapshot()
	defer snapshot.Close()

	values := make([]json.RawMessage, len(keys))
	for i, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value, closer, err := snapshot.Get(key.Encode())
		if errors.Is(err, pebble.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("pebble: error getting %q: %w", key, err)
		}
		values[i] = cloneValue(value)
		_ = closer.Close()
	}
	return values, nil
}

func (b *pebbleBackend) Atomic() Transaction {
	return &pebbleTransaction{batch: b.db.NewBatch()}
}

func (b *pebbleBackend) Close() error {
	return b.db.Close()
}

type pebbleTransaction struct {
	batch *pebble.Batch
	err   error
	done  bool
}

func (tx *pebbleTransaction) Set(key Key, value json.RawMessage) {
	if tx.err != nil {
		return
	}
	tx.err = tx.batch.Set(key.Encode(), value, nil)
}

func (tx *pebbleTransaction) Commit(ctx context.Context) (bool, error) {
	if tx.done {
		return false, ErrTransactionDone
	}
	tx.done = true
	defer tx.batch.Close()

	if tx.err != nil {
		return false, fmt.Errorf("pebble: error staging write: %w", tx.err)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if err := tx.batch.Commit(pebble.Sync); err != nil {
		return false, fmt.Errorf("pebble: error committing: %w", err)
	}
	return true, nil
}

// pebbleLogger forwards pebble's own messages to the service logger.
type pebbleLogger struct {
	log *logger.Logger
}

func (l pebbleLogger) Infof(format string, args ...any) {
	l.log.Debug().Str("component", "pebble").Msgf(format, args...)
}

func (l pebbleLogger) Errorf(format string, args ...any) {
	l.log.Error().Str("component", "pebble").Msgf(format, args...)
}

func (l pebbleLogger) Fatalf(format string, args ...any) {
	l.log.Fatal().Str("component", "pebble").Msgf(format, args...)
}

func (l pebbleLogger) Eventf(_ context.Context, format string, args ...any) {
	l.log.Trace().Str("component", "pebble").Msgf(format, args...)
}

func (pebbleLogger) IsTracingEnabled(_ context.Context) bool { return false }
