package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/btree"
)

type memoryItem struct {
	key   []byte
	value json.RawMessage
}

func lessMemoryItem(a, b memoryItem) bool {
	return bytes.Compare(a.key, b.key) < 0
}

// memoryBackend is an in-process ordered map. Everything is lost on Close.
type memoryBackend struct {
	mu      sync.RWMutex
	tree    *btree.BTreeG[memoryItem]
	maxKeys int
}

// NewMemoryBackend returns a [Backend] kept entirely in memory.
func NewMemoryBackend(maxKeys int) Backend {
	if maxKeys < 1 {
		maxKeys = DefaultMaxReadKeys
	}
	return &memoryBackend{
		tree:    btree.NewG(8, lessMemoryItem),
		maxKeys: maxKeys,
	}
}

func (b *memoryBackend) GetMany(ctx context.Context, keys []Key) ([]json.RawMessage, error) {
	if len(keys) > b.maxKeys {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyKeys, len(keys), b.maxKeys)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	values := make([]json.RawMessage, len(keys))
	for i, key := range keys {
		item, ok := b.tree.Get(memoryItem{key: key.Encode()})
		if ok {
			values[i] = cloneValue(item.value)
		}
	}
	return values, nil
}

func (b *memoryBackend) Atomic() Transaction {
	return &memoryTransaction{backend: b}
}

func (b *memoryBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tree.Clear(false)
	return nil
}

type memoryTransaction struct {
	backend *memoryBackend
	writes  []memoryItem
	done    bool
}

func (tx *memoryTransaction) Set(key Key, value json.RawMessage) {
	tx.writes = append(tx.writes, memoryItem{key: key.Encode(), value: cloneValue(value)})
}

func (tx *memoryTransaction) Commit(ctx context.Context) (bool, error) {
	if tx.done {
		return false, ErrTransactionDone
	}
	tx.done = true

	if err := ctx.Err(); err != nil {
		return false, err
	}

	tx.backend.mu.Lock()
	defer tx.backend.mu.Unlock()

	for _, item := range tx.writes {
		tx.backend.tree.ReplaceOrInsert(item)
	}
	return true, nil
}

// cloneValue copies v keeping the distinction between nil and empty.
func cloneValue(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out
}
