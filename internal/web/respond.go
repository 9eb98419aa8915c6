// Package web exposes the warband builder over a JSON REST API: warband
// CRUD, cost calculation, rule validation, catalog browsing, and bundle
// import/export.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies; warband payloads are small.
const maxBodyBytes = 1 << 20

// apiError is the wire shape of every non-2xx response.
type apiError struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encoding response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, apiError{Error: errorBody{Code: code, Message: message}})
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	h.writeError(w, http.StatusBadRequest, "bad_request", message)
}

func (h *Handler) notFound(w http.ResponseWriter) {
	h.writeError(w, http.StatusNotFound, "not_found", "warband not found")
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	h.logger.Error("request failed", zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, "internal", "internal server error")
}

// decodeJSON reads the request body into dst, rejecting oversized bodies
// and trailing garbage.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	if dec.More() {
		return errors.New("unexpected trailing data in request body")
	}
	return nil
}
