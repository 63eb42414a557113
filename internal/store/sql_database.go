// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/migrations"
)

// DB wraps a *sql.DB together with the dialect-specific pieces the SQL
// backend needs.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the conf_entries schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// sqlBackend keeps every entry as one row of the conf_entries table.
type sqlBackend struct {
	db      *DB
	maxKeys int
}

// NewSQLBackend returns a [Backend] over an opened and migrated [DB].
func NewSQLBackend(db *DB, maxKeys int) Backend {
	if maxKeys < 1 {
		maxKeys = DefaultMaxReadKeys
	}
	return &sqlBackend{db: db, maxKeys: maxKeys}
}

// GetMany reads all keys with a single SELECT ... WHERE conf_key IN (...).
func (b *sqlBackend) GetMany(ctx context.Context, keys []Key) ([]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if len(keys) > b.maxKeys {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyKeys, len(keys), b.maxKeys)
	}
	values := make([]json.RawMessage, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	encoded := make([][]byte, len(keys))
	for i, key := range keys {
		encoded[i] = key.Encode()
	}

	query, args, err := buildGetManyQuery(b.db.dialect, encoded)
	if err != nil {
		log.Err(err).Str("func", "*sqlBackend.GetMany").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlBackend.GetMany").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	found := make(map[string]json.RawMessage, len(keys))
	for rows.Next() {
		var key, value []byte
		if err = rows.Scan(&key, &value); err != nil {
			log.Err(err).Str("func", "*sqlBackend.GetMany").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if value == nil {
			value = []byte("null")
		}
		found[string(key)] = value
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlBackend.GetMany").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for i, key := range encoded {
		if value, ok := found[string(key)]; ok {
			values[i] = cloneValue(value)
		}
	}
	return values, nil
}

func (b *sqlBackend) Atomic() Transaction {
	return &sqlTransaction{
		db:    b.db,
		index: make(map[string]int),
	}
}

func (b *sqlBackend) Close() error {
	return b.db.Close()
}

type sqlWrite struct {
	key   []byte
	value json.RawMessage
}

// sqlTransaction stages writes in memory and sends them as one upsert inside
// a single database transaction. A key staged twice keeps its last value.
type sqlTransaction struct {
	db     *DB
	writes []sqlWrite
	index  map[string]int
	done   bool
}

func (tx *sqlTransaction) Set(key Key, value json.RawMessage) {
	encoded := key.Encode()
	if i, ok := tx.index[string(encoded)]; ok {
		tx.writes[i].value = cloneValue(value)
		return
	}
	tx.index[string(encoded)] = len(tx.writes)
	tx.writes = append(tx.writes, sqlWrite{key: encoded, value: cloneValue(value)})
}

// Commit runs the upsert in a database transaction. Conflicts the error
// classificator marks as retryable are reported as not applied without an
// error.
func (tx *sqlTransaction) Commit(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	if tx.done {
		return false, ErrTransactionDone
	}
	tx.done = true

	if len(tx.writes) == 0 {
		return true, nil
	}

	query, args, err := buildUpsertQuery(tx.db.dialect, tx.writes)
	if err != nil {
		log.Err(err).Str("func", "*sqlTransaction.Commit").Msg("error building upsert")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sqlTx, err := tx.db.BeginTx(ctx, txOptions(tx.db.dialect))
	if err != nil {
		log.Err(err).Str("func", "*sqlTransaction.Commit").Msg("error beginning transaction")
		return tx.conflictOr(fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer sqlTx.Rollback()

	if _, err = sqlTx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlTransaction.Commit").Msg("error executing upsert")
		return tx.conflictOr(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	if err = sqlTx.Commit(); err != nil {
		log.Err(err).Str("func", "*sqlTransaction.Commit").Msg("error committing transaction")
		return tx.conflictOr(fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return true, nil
}

func (tx *sqlTransaction) conflictOr(err error) (bool, error) {
	if tx.db.errorClassificator != nil && tx.db.errorClassificator.Classify(err) == Retryable {
		return false, nil
	}
	return false, err
}

func txOptions(dialect migrations.Dialect) *sql.TxOptions {
	if dialect == migrations.DialectPostgres {
		return &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return nil
}
