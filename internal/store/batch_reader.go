// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/conf-keeper/internal/logger"
)

// DefaultMaxReadKeys is the chunk size used when none is configured.
const DefaultMaxReadKeys = 10

// BatchReader reads an arbitrary number of keys from a [Backend] whose bulk
// read accepts at most maxKeys keys per call.
type BatchReader struct {
	backend Backend
	maxKeys int
}

// NewBatchReader returns a BatchReader over backend. A non-positive maxKeys
// falls back to [DefaultMaxReadKeys].
func NewBatchReader(backend Backend, maxKeys int) *BatchReader {
	if maxKeys < 1 {
		maxKeys = DefaultMaxReadKeys
	}
	return &BatchReader{
		backend: backend,
		maxKeys: maxKeys,
	}
}

// ReadMany returns one value per key, in the order of keys.
//
// Keys are split into contiguous chunks of at most maxKeys and each chunk is
// read with a single GetMany call. Chunks are read one after another, so the
// number of backend calls is ceil(len(keys)/maxKeys) and no call is made for
// an empty input. Duplicate keys are read independently.
//
// The first failing chunk aborts the read with [ErrReadFailed]; results of
// earlier chunks are discarded.
func (r *BatchReader) ReadMany(ctx context.Context, keys []Key) ([]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	values := make([]json.RawMessage, 0, len(keys))
	for start := 0; start < len(keys); start += r.maxKeys {
		end := min(start+r.maxKeys, len(keys))
		chunk := keys[start:end]

		chunkValues, err := r.backend.GetMany(ctx, chunk)
		if err != nil {
			log.Err(err).Str("func", "*BatchReader.ReadMany").
				Int("chunk_start", start).
				Int("chunk_len", len(chunk)).
				Msg("bulk read failed")
			return nil, fmt.Errorf("%w: keys %d..%d: %w", ErrReadFailed, start, end-1, err)
		}
		if len(chunkValues) != len(chunk) {
			log.Error().Str("func", "*BatchReader.ReadMany").
				Int("want", len(chunk)).
				Int("got", len(chunkValues)).
				Msg("bulk read returned wrong number of values")
			return nil, fmt.Errorf("%w: backend returned %d values for %d keys", ErrReadFailed, len(chunkValues), len(chunk))
		}

		values = append(values, chunkValues...)
	}

	return values, nil
}
