// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/internal/utils"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// confGet handles POST {prefix}/conf_get.
//
// The body is a JSON array of key names. The response is a JSON object with
// one member per distinct name in request order; absent keys are null.
func (h *Handler) confGet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var names []string
	if err := decodeBody(w, r, &names); err != nil || names == nil {
		log.Err(err).Str("func", "*Handler.confGet").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.services.ConfService.Get(r.Context(), names)
	if err != nil {
		log.Err(err).Str("func", "*Handler.confGet").Msg("error getting conf entries")
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, entries, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.confGet").Msg("error writing response")
	}
}

// confSet handles POST {prefix}/conf_set.
//
// The body is a JSON object of name to value. All entries are stored in one
// transaction; the response is an empty object.
func (h *Handler) confSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var entries map[string]json.RawMessage
	if err := decodeBody(w, r, &entries); err != nil || entries == nil {
		log.Err(err).Str("func", "*Handler.confSet").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.ConfService.Set(r.Context(), entries); err != nil {
		log.Err(err).Str("func", "*Handler.confSet").Msg("error setting conf entries")
		h.writeError(w, r, err)
		return
	}

	if _, err := utils.WriteJSON(w, struct{}{}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.confSet").Msg("error writing response")
	}
}

// writeError reports an application failure: HTTP 200 with an {"e","t"}
// envelope.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if _, werr := utils.WriteJSON(w, errorResponseFromError(err), http.StatusOK); werr != nil {
		logger.FromRequest(r).Err(werr).Str("func", "*Handler.writeError").Msg("error writing response")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("unexpected data after JSON body")
	}
	return nil
}
