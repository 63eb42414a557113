package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName    = errors.New("key name cannot be empty")
	ErrInvalidValue = errors.New("value is not a valid JSON document")
)
