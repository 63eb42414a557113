package http

import (
	"errors"

	"github.com/MKhiriev/conf-keeper/internal/service"
	"github.com/MKhiriev/conf-keeper/internal/store"
	"github.com/MKhiriev/conf-keeper/models"
)

var errorCodeMap = map[error]models.ErrorCode{
	service.ErrInvalidDataProvided: models.CodeInvalidRequest,

	store.ErrReadFailed:   models.CodeReadFailed,
	store.ErrCommitFailed: models.CodeCommitFailed,
}

// errorResponseFromError builds the envelope reported for a service error.
// Unclassified errors become CodeInternal without their details.
func errorResponseFromError(err error) models.ErrorResponse {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return models.ErrorResponse{Code: code, Text: err.Error()}
		}
	}
	return models.ErrorResponse{Code: models.CodeInternal, Text: "internal error"}
}
