package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/conf-keeper/models"
)

// mapResponse turns a raw response into the decoded payload or a typed
// error: [*TransportError] for a non-2xx status, [*ApplicationError] for a
// failed envelope.
func mapResponse(resp *resty.Response) (map[string]json.RawMessage, error) {
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &TransportError{StatusCode: resp.StatusCode()}
	}

	env, err := models.ParseEnvelope(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if env.Failed() {
		return nil, &ApplicationError{Code: env.Code, RawCode: env.RawCode, Text: env.Text}
	}

	return env.Fields, nil
}
