package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/voydwalkr/fungible/internal/filter"
	assetsvc "github.com/voydwalkr/fungible/internal/services/assets"
	pairsvc "github.com/voydwalkr/fungible/internal/services/pairs"
	"github.com/voydwalkr/fungible/pkg/fungible"
)

// Helper functions for common HTTP responses

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeJSON writes a JSON response with the given data.
func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// writeCreated writes a 201 Created response with a JSON body.
func writeCreated(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(data)
}

// writeNoContent writes a 204 No Content response.
func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps service and codec errors onto status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var decErr *fungible.DecodeError
	switch {
	case errors.Is(err, assetsvc.ErrNotFound), errors.Is(err, pairsvc.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, pairsvc.ErrExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, assetsvc.ErrInvalidAsset), errors.Is(err, pairsvc.ErrInvalidPair),
		errors.Is(err, filter.ErrInvalid), errors.Is(err, fungible.ErrParse), errors.As(err, &decErr):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// parseLimit parses a limit string and returns a valid limit value.
//
// Returns 0 for empty strings or invalid values.
func parseLimit(limitStr string) int {
	if limitStr == "" {
		return 0
	}
	if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
		return limit
	}
	return 0
}

// parseKindParam parses an optional kind query parameter.
func parseKindParam(s string) (*fungible.Kind, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}
	k, ok := fungible.ParseKind(s)
	if !ok {
		return nil, false
	}
	return &k, true
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
