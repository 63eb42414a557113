// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/models"
)

// ConfStore keeps named JSON documents under a fixed key prefix of a
// [Backend].
//
// Every key the store reads or writes is the prefix followed by a single
// name segment, so entries outside the prefix are never touched.
type ConfStore struct {
	backend Backend
	reader  *BatchReader
	prefix  Key
}

// NewConfStore binds a store to backend and prefix. The prefix is copied.
func NewConfStore(backend Backend, prefix Key, maxReadKeys int) *ConfStore {
	return &ConfStore{
		backend: backend,
		reader:  NewBatchReader(backend, maxReadKeys),
		prefix:  prefix.Clone(),
	}
}

// Prefix returns a copy of the store's key prefix.
func (s *ConfStore) Prefix() Key {
	return s.prefix.Clone()
}

// Get reads the values stored under names.
//
// The result has one entry per name, in the order given, duplicates
// included. Names with nothing stored get an absent entry. An empty names
// list returns an empty result without touching the backend.
//
// Any backend failure is reported as [ErrReadFailed].
func (s *ConfStore) Get(ctx context.Context, names []string) (models.ConfEntries, error) {
	if len(names) == 0 {
		return models.ConfEntries{}, nil
	}

	keys := make([]Key, len(names))
	for i, name := range names {
		keys[i] = s.prefix.Append(name)
	}

	values, err := s.reader.ReadMany(ctx, keys)
	if err != nil {
		return nil, err
	}

	entries := make(models.ConfEntries, len(names))
	for i, name := range names {
		entries[i] = models.ConfEntry{Name: name, Value: values[i]}
	}

	return entries, nil
}

// Set writes all entries in a single atomic transaction.
//
// Either every entry is stored or none is. A transaction the backend did not
// apply is reported as [ErrCommitFailed] naming the keys involved. An empty
// map still opens and commits an empty transaction.
func (s *ConfStore) Set(ctx context.Context, entries map[string]json.RawMessage) error {
	log := logger.FromContext(ctx)

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	tx := s.backend.Atomic()
	for _, name := range names {
		tx.Set(s.prefix.Append(name), entries[name])
	}

	ok, err := tx.Commit(ctx)
	if err != nil {
		log.Err(err).Str("func", "*ConfStore.Set").Strs("keys", names).Msg("commit returned an error")
		return fmt.Errorf("%w: keys %v: %w", ErrCommitFailed, names, err)
	}
	if !ok {
		log.Warn().Str("func", "*ConfStore.Set").Strs("keys", names).Msg("transaction was not applied")
		return fmt.Errorf("%w: keys %v", ErrCommitFailed, names)
	}

	return nil
}
