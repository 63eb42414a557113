// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyToken is returned when a token file holds no token.
var ErrEmptyToken = errors.New("token file is empty")

// GenerateToken returns a fresh random access token.
func GenerateToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ReadTokenFile reads a token and strips trailing "\r" and "\n". Other
// whitespace is part of the token.
func ReadTokenFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading token file: %w", err)
	}

	token := strings.TrimRight(string(data), "\r\n")
	if token == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyToken, path)
	}

	return token, nil
}

// WriteTokenFile writes token readable by the owner only, creating parent
// directories with mode 0700.
func WriteTokenFile(path, token string) error {
	return writeRuntimeFile(path, token+"\n")
}

// ProvisionToken returns the token the server should accept: configured if
// non-empty, else the one already in path, else a new token written to path.
func ProvisionToken(configured, path string) (string, error) {
	if configured != "" {
		if path == "" {
			return configured, nil
		}
		return configured, WriteTokenFile(path, configured)
	}

	if path == "" {
		return "", errors.New("no token configured and no token file location")
	}

	token, err := ReadTokenFile(path)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, os.ErrNotExist) && !errors.Is(err, ErrEmptyToken) {
		return "", err
	}

	token = GenerateToken()
	if err = WriteTokenFile(path, token); err != nil {
		return "", err
	}
	return token, nil
}

func writeRuntimeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("error creating runtime dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o600); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
