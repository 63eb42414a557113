// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged [StructuredConfig] satisfies all server
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DSN == "" || cfg.Storage.MaxReadKeys < 1 || len(cfg.Storage.Prefix) == 0 {
		return ErrInvalidStorageConfigs
	}
	for _, segment := range cfg.Storage.Prefix {
		if segment == "" {
			return fmt.Errorf("%w: empty prefix segment", ErrInvalidStorageConfigs)
		}
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if p := cfg.Server.APIPrefix; p != "" && (!strings.HasPrefix(p, "/") || strings.HasSuffix(p, "/")) {
		return fmt.Errorf("%w: api prefix must start and must not end with '/'", ErrInvalidServerConfigs)
	}

	if cfg.App.Token == "" && cfg.TokenPath() == "" {
		return fmt.Errorf("%w: either a token or XDG_RUNTIME_DIR is required", ErrInvalidAppConfigs)
	}

	return nil
}
