// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/internal/utils"
)

// Request paths relative to the client's base URL.
const (
	ConfGetPath = "/conf_get"
	ConfSetPath = "/conf_set"
)

// Header names sent with every request.
const (
	TokenHeader   = "x-token"
	TraceIDHeader = "X-Trace-ID"
)

// ConfClient is an HTTP implementation of [ConfAdapter].
type ConfClient struct {
	client    *utils.HTTPClient
	readToken TokenProvider

	logger *logger.Logger
}

var _ ConfAdapter = (*ConfClient)(nil)

// NewConfClient returns a client for the API rooted at baseURL, for example
// "http://127.0.0.1:8080/api". readToken is consulted before every request.
//
// Requests are never retried and have no timeout beyond their context.
func NewConfClient(baseURL string, readToken TokenProvider, logger *logger.Logger) *ConfClient {
	return &ConfClient{
		client:    utils.NewHTTPClient(baseURL),
		readToken: readToken,
		logger:    logger,
	}
}

// Call obtains a token, posts body as JSON to path and decodes the reply.
//
// A non-2xx status yields [*TransportError] and an envelope with a non-zero
// code yields [*ApplicationError]. Otherwise every member of the response
// object is returned, envelope members included.
func (c *ConfClient) Call(ctx context.Context, path string, body any) (map[string]json.RawMessage, error) {
	token, err := c.readToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenUnavailable, err)
	}

	req := c.client.R().
		SetContext(ctx).
		SetHeader(TokenHeader, token).
		SetBody(body)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}

	resp, err := req.Post(path)
	if err != nil {
		c.logger.Err(err).Str("func", "*ConfClient.Call").Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%s request: %w", path, err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get(TraceIDHeader)).
		Msg("response received")

	return mapResponse(resp)
}

// ConfGet reads names. A nil slice is sent as an empty list.
func (c *ConfClient) ConfGet(ctx context.Context, names []string) (map[string]json.RawMessage, error) {
	if names == nil {
		names = []string{}
	}
	return c.Call(ctx, ConfGetPath, names)
}

// ConfSet writes entries. A nil map is sent as an empty object.
func (c *ConfClient) ConfSet(ctx context.Context, entries map[string]json.RawMessage) (map[string]json.RawMessage, error) {
	if entries == nil {
		entries = map[string]json.RawMessage{}
	}
	return c.Call(ctx, ConfSetPath, entries)
}
