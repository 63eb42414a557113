package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/conf-keeper/internal/config"
	"github.com/MKhiriev/conf-keeper/internal/logger"
)

func TestOpenBackend_Schemes(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		dsn      string
		wantType any
	}{
		{dsn: "memory://", wantType: &memoryBackend{}},
		{dsn: "pebble://memory", wantType: &pebbleBackend{}},
		{dsn: "pebble://" + filepath.Join(dir, "pebble"), wantType: &pebbleBackend{}},
		{dsn: "sqlite://" + filepath.Join(dir, "sub", "conf.db"), wantType: &sqlBackend{}},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			b, err := OpenBackend(context.Background(), config.Storage{DSN: tt.dsn, MaxReadKeys: 5}, logger.Nop())
			require.NoError(t, err)
			defer b.Close()

			assert.IsType(t, tt.wantType, b)
		})
	}
}

func TestOpenBackend_Unsupported(t *testing.T) {
	_, err := OpenBackend(context.Background(), config.Storage{DSN: "redis://localhost"}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedBackend)
}

func TestOpenBackend_InvalidLocation(t *testing.T) {
	for _, dsn := range []string{
		"pebble://run/conf-keeper/db",
		"pebble:run/conf-keeper/db",
		"pebble://",
		"pebble://memory/extra",
		"sqlite://data/conf.db",
		"sqlite:conf.db",
		"sqlite://memory",
	} {
		t.Run(dsn, func(t *testing.T) {
			_, err := OpenBackend(context.Background(), config.Storage{DSN: dsn, MaxReadKeys: 5}, logger.Nop())
			assert.ErrorIs(t, err, ErrInvalidDSN)
		})
	}
}

func TestNewStorages(t *testing.T) {
	ctx := context.Background()
	s, err := NewStorages(ctx, config.Storage{DSN: "memory://", Prefix: []string{"app", "conf"}, MaxReadKeys: 2}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, Key{"app", "conf"}, s.ConfStore.Prefix())

	require.NoError(t, s.ConfStore.Set(ctx, map[string]json.RawMessage{"a": json.RawMessage(`1`)}))
	values, err := s.Backend.GetMany(ctx, []Key{{"app", "conf", "a"}})
	require.NoError(t, err)
	assert.Equal(t, `1`, string(values[0]))
}
