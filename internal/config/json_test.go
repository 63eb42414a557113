package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {"token": "secret", "token_file": "ck/token", "port_file": "ck/port"},
		"storage": {"dsn": "memory://", "prefix": ["apps", "conf"], "max_read_keys": 4},
		"server": {"http_address": "127.0.0.1:7000", "api_prefix": "/api", "request_timeout": "15s"},
		"runtime_dir": "/run/user/1000"
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.Token)
	assert.Equal(t, "ck/token", cfg.App.TokenFile)
	assert.Equal(t, "ck/port", cfg.App.PortFile)
	assert.Equal(t, "memory://", cfg.Storage.DSN)
	assert.Equal(t, []string{"apps", "conf"}, cfg.Storage.Prefix)
	assert.Equal(t, 4, cfg.Storage.MaxReadKeys)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/api", cfg.Server.APIPrefix)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/run/user/1000", cfg.RuntimeDir)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server":`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"1m30s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000`)))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	require.Error(t, d.UnmarshalJSON([]byte(`"soon"`)))
}
