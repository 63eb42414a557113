package validators

import (
	"context"
	"encoding/json"
	"fmt"
)

// Field name constants that scope [ConfValidator.Validate].
const (
	// FieldNames checks that every key name is non-empty.
	FieldNames = "names"

	// FieldValues checks that every value is a single valid JSON document.
	FieldValues = "values"
)

// ConfValidator implements [Validator] for conf_get name lists and conf_set
// entry maps.
type ConfValidator struct{}

// NewConfValidator constructs a ConfValidator and returns it as a Validator.
func NewConfValidator() Validator {
	return &ConfValidator{}
}

// Validate accepts []string (names) and map[string]json.RawMessage
// (entries). Names are always checked; values are checked for entry maps
// unless fields narrows the check.
func (v *ConfValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case []string:
		if len(fields) == 0 {
			fields = []string{FieldNames}
		}
		return validateNames(value, fields)

	case map[string]json.RawMessage:
		if len(fields) == 0 {
			fields = []string{FieldNames, FieldValues}
		}
		names := make([]string, 0, len(value))
		for name := range value {
			names = append(names, name)
		}
		for _, f := range fields {
			switch f {
			case FieldNames:
				if err := validateNames(names, []string{FieldNames}); err != nil {
					return err
				}
			case FieldValues:
				for name, raw := range value {
					if !json.Valid(raw) {
						return fmt.Errorf("%w: %q", ErrInvalidValue, name)
					}
				}
			default:
				return ErrUnknownField
			}
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func validateNames(names []string, fields []string) error {
	for _, f := range fields {
		if f != FieldNames {
			return ErrUnknownField
		}
	}

	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: position %d", ErrEmptyName, i)
		}
	}
	return nil
}
