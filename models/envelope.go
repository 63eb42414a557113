package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Envelope field names.
const (
	EnvelopeCodeField = "e"
	EnvelopeTextField = "t"
)

// ErrorCode is the application error code carried in the "e" member of a
// response envelope. Zero means success.
type ErrorCode int

const (
	CodeOK ErrorCode = iota
	// CodeInvalidRequest is returned for well-formed JSON the server refuses,
	// such as an empty key name.
	CodeInvalidRequest
	CodeReadFailed
	CodeCommitFailed
	CodeInternal
)

// CodeNonInteger stands for a failing "e" member that is not an integer,
// such as 2.5 or "1". The original member is kept in [Envelope.RawCode].
const CodeNonInteger ErrorCode = -1

// ErrMalformedEnvelope is returned when a response body is not a JSON object.
var ErrMalformedEnvelope = errors.New("malformed response envelope")

// ErrorResponse is the body the server writes for application failures.
type ErrorResponse struct {
	Code ErrorCode `json:"e"`
	Text string    `json:"t"`
}

// Envelope is a decoded response body. Fields holds every member of the
// JSON object, envelope members included.
type Envelope struct {
	Fields map[string]json.RawMessage
	Code   ErrorCode
	// RawCode is the failing "e" member as text: numbers in shortest form,
	// strings unquoted, anything else as compact JSON. Empty on success.
	RawCode string
	Text    string
}

// Failed reports whether the envelope carries an error code.
func (e Envelope) Failed() bool {
	return e.RawCode != ""
}

// ParseEnvelope decodes body as a JSON object and extracts the optional
// error code and text.
//
// A missing or null "e" member, or any number equal to zero (0, 0.0, -0),
// means success. Every other value of "e" marks a failure, whatever its JSON
// type.
func ParseEnvelope(body []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env.Fields); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if env.Fields == nil {
		return Envelope{}, fmt.Errorf("%w: body is null", ErrMalformedEnvelope)
	}

	if raw, ok := env.Fields[EnvelopeCodeField]; ok {
		env.Code, env.RawCode = parseCode(raw)
	}

	if raw, ok := env.Fields[EnvelopeTextField]; ok {
		if err := json.Unmarshal(raw, &env.Text); err != nil {
			env.Text = string(raw)
		}
	}

	return env, nil
}

// parseCode returns CodeOK and "" for a successful code.
func parseCode(raw json.RawMessage) (ErrorCode, string) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return CodeNonInteger, string(raw)
	}

	switch v := value.(type) {
	case nil:
		return CodeOK, ""
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			// out of float64 range, certainly not zero
			return CodeNonInteger, v.String()
		}
		if f == 0 {
			return CodeOK, ""
		}
		text := strconv.FormatFloat(f, 'f', -1, 64)
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return CodeNonInteger, text
		}
		return ErrorCode(int(f)), text
	case string:
		if v == "" {
			return CodeNonInteger, `""`
		}
		return CodeNonInteger, v
	default:
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return CodeNonInteger, string(raw)
		}
		return CodeNonInteger, compact.String()
	}
}
