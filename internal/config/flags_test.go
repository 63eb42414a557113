package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "unset address",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "",
		},
		{
			name:     "ip with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090, set: true},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "ephemeral port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 0, set: true},
			expected: "127.0.0.1:0",
		},
		{
			name:     "ipv6 host",
			addr:     NetAddress{Host: "::1", Port: 80, set: true},
			expected: "[::1]:80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		host        string
		port        int
	}{
		{name: "localhost", input: "localhost:8080", host: "localhost", port: 8080},
		{name: "ip", input: "127.0.0.1:0", host: "127.0.0.1", port: 0},
		{name: "missing port", input: "127.0.0.1", expectError: true},
		{name: "bad port", input: "127.0.0.1:abc", expectError: true},
		{name: "port out of range", input: "127.0.0.1:70000", expectError: true},
		{name: "hostname not allowed", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.host, addr.Host)
			assert.Equal(t, tt.port, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:7000",
		"-d", "sqlite:///tmp/conf.db",
		"-prefix", "/apps/conf/",
		"-max-read-keys", "25",
		"-api-prefix", "/api",
		"-request-timeout", "5s",
		"-token", "secret",
		"-token-file", "ck/token",
		"-port-file", "ck/port",
		"-config", "/etc/conf.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "sqlite:///tmp/conf.db", cfg.Storage.DSN)
	assert.Equal(t, []string{"apps", "conf"}, cfg.Storage.Prefix)
	assert.Equal(t, 25, cfg.Storage.MaxReadKeys)
	assert.Equal(t, "/api", cfg.Server.APIPrefix)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "secret", cfg.App.Token)
	assert.Equal(t, "ck/token", cfg.App.TokenFile)
	assert.Equal(t, "ck/port", cfg.App.PortFile)
	assert.Equal(t, "/etc/conf.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Nil(t, cfg.Storage.Prefix)
	assert.Zero(t, cfg.Storage.MaxReadKeys)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-unknown"})
	require.Error(t, err)
}
