package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/conf-keeper/internal/validators"
	"github.com/MKhiriev/conf-keeper/models"
)

// ConfValidationService rejects requests with empty key names or invalid
// values before they reach the wrapped service.
type ConfValidationService struct {
	inner     ConfService
	validator validators.Validator
}

func NewConfValidationService() ConfServiceWrapper {
	return &ConfValidationService{
		validator: validators.NewConfValidator(),
	}
}

func (v *ConfValidationService) Get(ctx context.Context, names []string) (models.ConfEntries, error) {
	if err := v.validator.Validate(ctx, names); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Get(ctx, names)
}

func (v *ConfValidationService) Set(ctx context.Context, entries map[string]json.RawMessage) error {
	if err := v.validator.Validate(ctx, entries); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Set(ctx, entries)
}

func (v *ConfValidationService) Wrap(wrapped ConfService) ConfService {
	v.inner = wrapped
	return v
}
