package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/conf-keeper/internal/store"
	"github.com/MKhiriev/conf-keeper/internal/store/mock"
	"github.com/MKhiriev/conf-keeper/models"
)

func TestConfStore_SetThenGet(t *testing.T) {
	ctx := context.Background()
	s := store.NewConfStore(store.NewMemoryBackend(10), store.Key{"conf"}, 10)

	require.NoError(t, s.Set(ctx, map[string]json.RawMessage{
		"a": json.RawMessage(`"1"`),
		"b": json.RawMessage(`{"nested":[1,2]}`),
		"n": json.RawMessage(`null`),
	}))

	entries, err := s.Get(ctx, []string{"b", "missing", "a", "n", "a"})
	require.NoError(t, err)

	require.Len(t, entries, 5)
	assert.Equal(t, "b", entries[0].Name)
	assert.JSONEq(t, `{"nested":[1,2]}`, string(entries[0].Value))
	assert.True(t, entries[1].Absent())
	assert.JSONEq(t, `"1"`, string(entries[2].Value))
	assert.False(t, entries[3].Absent())
	assert.Equal(t, `null`, string(entries[3].Value))
	assert.Equal(t, entries[2], entries[4])

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.Equal(t, `{"b":{"nested":[1,2]},"missing":null,"a":"1","n":null}`, string(data))
}

func TestConfStore_GetManyKeysChunked(t *testing.T) {
	ctx := context.Background()
	s := store.NewConfStore(store.NewMemoryBackend(3), store.Key{"conf"}, 3)

	values := map[string]json.RawMessage{}
	names := make([]string, 0, 8)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		values[name] = json.RawMessage(`"` + name + `"`)
		names = append(names, name)
	}
	require.NoError(t, s.Set(ctx, values))

	entries, err := s.Get(ctx, names)
	require.NoError(t, err)
	require.Len(t, entries, len(names))
	for i, name := range names {
		assert.Equal(t, name, entries[i].Name)
		assert.Equal(t, `"`+name+`"`, string(entries[i].Value))
	}
}

func TestConfStore_GetEmptyMakesNoBackendCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)

	entries, err := store.NewConfStore(backend, store.Key{"conf"}, 10).Get(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConfStore_GetReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	backend.EXPECT().GetMany(gomock.Any(), gomock.Any()).Return(nil, errors.New("io error"))

	entries, err := store.NewConfStore(backend, store.Key{"conf"}, 10).Get(context.Background(), []string{"a"})
	require.ErrorIs(t, err, store.ErrReadFailed)
	assert.Nil(t, entries)
}

func TestConfStore_SetUsesOneTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	tx := mock.NewMockTransaction(ctrl)

	backend.EXPECT().Atomic().Return(tx).Times(1)
	tx.EXPECT().Set(store.Key{"app", "conf", "a"}, json.RawMessage(`1`))
	tx.EXPECT().Set(store.Key{"app", "conf", "b"}, json.RawMessage(`2`))
	tx.EXPECT().Commit(gomock.Any()).Return(true, nil).Times(1)

	s := store.NewConfStore(backend, store.Key{"app", "conf"}, 10)
	require.NoError(t, s.Set(context.Background(), map[string]json.RawMessage{
		"a": json.RawMessage(`1`),
		"b": json.RawMessage(`2`),
	}))
}

func TestConfStore_SetEmptyStillCommits(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	tx := mock.NewMockTransaction(ctrl)

	backend.EXPECT().Atomic().Return(tx)
	tx.EXPECT().Commit(gomock.Any()).Return(true, nil)

	require.NoError(t, store.NewConfStore(backend, store.Key{"conf"}, 10).Set(context.Background(), map[string]json.RawMessage{}))
}

func TestConfStore_SetCommitNotApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	tx := mock.NewMockTransaction(ctrl)

	backend.EXPECT().Atomic().Return(tx)
	tx.EXPECT().Set(gomock.Any(), gomock.Any()).Times(2)
	tx.EXPECT().Commit(gomock.Any()).Return(false, nil)

	err := store.NewConfStore(backend, store.Key{"conf"}, 10).Set(context.Background(), map[string]json.RawMessage{
		"x": json.RawMessage(`1`),
		"y": json.RawMessage(`2`),
	})
	require.ErrorIs(t, err, store.ErrCommitFailed)
	assert.Contains(t, err.Error(), "x")
	assert.Contains(t, err.Error(), "y")
}

func TestConfStore_SetCommitError(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	tx := mock.NewMockTransaction(ctrl)
	boom := errors.New("boom")

	backend.EXPECT().Atomic().Return(tx)
	tx.EXPECT().Set(gomock.Any(), gomock.Any())
	tx.EXPECT().Commit(gomock.Any()).Return(false, boom)

	err := store.NewConfStore(backend, store.Key{"conf"}, 10).Set(context.Background(), map[string]json.RawMessage{"x": json.RawMessage(`1`)})
	require.ErrorIs(t, err, store.ErrCommitFailed)
	require.ErrorIs(t, err, boom)
}

// rejectingBackend never applies a transaction.
type rejectingBackend struct {
	store.Backend
}

func (b rejectingBackend) Atomic() store.Transaction {
	return rejectingTransaction{}
}

type rejectingTransaction struct{}

func (rejectingTransaction) Set(store.Key, json.RawMessage) {}

func (rejectingTransaction) Commit(context.Context) (bool, error) { return false, nil }

func TestConfStore_FailedCommitLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend(10)
	good := store.NewConfStore(backend, store.Key{"conf"}, 10)
	require.NoError(t, good.Set(ctx, map[string]json.RawMessage{"a": json.RawMessage(`"old"`)}))

	bad := store.NewConfStore(rejectingBackend{backend}, store.Key{"conf"}, 10)
	err := bad.Set(ctx, map[string]json.RawMessage{
		"a": json.RawMessage(`"new"`),
		"b": json.RawMessage(`"new"`),
	})
	require.ErrorIs(t, err, store.ErrCommitFailed)

	entries, err := good.Get(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, `"old"`, string(entries[0].Value))
	assert.True(t, entries[1].Absent())
}

func TestConfStore_PrefixIsolation(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend(10)

	prefix := store.Key{"one"}
	first := store.NewConfStore(backend, prefix, 10)
	second := store.NewConfStore(backend, store.Key{"two"}, 10)
	prefix[0] = "mutated"

	require.NoError(t, first.Set(ctx, map[string]json.RawMessage{"k": json.RawMessage(`1`)}))
	require.NoError(t, second.Set(ctx, map[string]json.RawMessage{"k": json.RawMessage(`2`)}))

	got, err := first.Get(ctx, []string{"k"})
	require.NoError(t, err)
	assert.Equal(t, models.ConfEntries{{Name: "k", Value: json.RawMessage(`1`)}}, got)

	got, err = second.Get(ctx, []string{"k"})
	require.NoError(t, err)
	assert.Equal(t, `2`, string(got[0].Value))

	assert.Equal(t, store.Key{"one"}, first.Prefix())
}
