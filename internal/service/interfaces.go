package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/conf-keeper/internal/store"
	"github.com/MKhiriev/conf-keeper/models"
)

// ConfService reads and writes named configuration documents.
type ConfService interface {
	Get(ctx context.Context, names []string) (models.ConfEntries, error)
	Set(ctx context.Context, entries map[string]json.RawMessage) error
}

// ConfStorage is the store the service delegates to.
type ConfStorage interface {
	store.ConfReader
	store.ConfWriter
}

// ConfServiceWrapper defines middleware composition for ConfService.
// Implementations wrap an existing ConfService to add behavior such as
// validating.
type ConfServiceWrapper interface {
	Wrap(ConfService) ConfService // returns a decorated ConfService applying additional behavior
}
