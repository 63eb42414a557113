// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/models"
)

// confService is the default implementation of [ConfService]. It hands
// requests to the store unchanged.
type confService struct {
	storage ConfStorage
	logger  *logger.Logger
}

// NewConfService constructs a [ConfService] over storage.
func NewConfService(storage ConfStorage, logger *logger.Logger) ConfService {
	logger.Debug().Msg("creating conf service")
	return &confService{
		storage: storage,
		logger:  logger,
	}
}

// Get returns the entries for names in request order.
func (s *confService) Get(ctx context.Context, names []string) (models.ConfEntries, error) {
	log := logger.FromContext(ctx)

	entries, err := s.storage.Get(ctx, names)
	if err != nil {
		log.Err(err).Str("func", "*confService.Get").Int("names", len(names)).Msg("error reading conf entries")
		return nil, err
	}

	log.Debug().Str("func", "*confService.Get").Int("names", len(names)).Msg("conf entries read")
	return entries, nil
}

// Set stores every entry atomically.
func (s *confService) Set(ctx context.Context, entries map[string]json.RawMessage) error {
	log := logger.FromContext(ctx)

	if err := s.storage.Set(ctx, entries); err != nil {
		log.Err(err).Str("func", "*confService.Set").Int("entries", len(entries)).Msg("error writing conf entries")
		return err
	}

	log.Debug().Str("func", "*confService.Set").Int("entries", len(entries)).Msg("conf entries written")
	return nil
}
