package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "paddy/internal/errors"
)

// This file contains the shared response DTOs for the API layer and the
// helpers for sending consistent HTTP responses.

// ErrorResponse is the standard JSON structure for error messages.
type ErrorResponse struct {
	Error  string `json:"error"`
	Type   string `json:"type"`
	Detail string `json:"detail,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// RootResponse is the body of GET /.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// errorMapping pins a sentinel error to its HTTP status and error type tag.
// Entries are checked in order with errors.Is, so specific vault errors must
// precede the ErrVault base.
type errorMapping struct {
	sentinel error
	status   int
	errType  string
	// leakMessage controls whether err.Error() is safe to show the client.
	// Validation messages are written for users; everything else gets a
	// generic message while the cause stays in the server log.
	leakMessage bool
}

var errorTable = []errorMapping{
	{apperrors.ErrValidation, http.StatusBadRequest, "validation_error", true},
	{apperrors.ErrAuthentication, http.StatusUnauthorized, "authentication_error", true},
	{apperrors.ErrPermission, http.StatusForbidden, "permission_error", true},
	{apperrors.ErrNoteNotFound, http.StatusNotFound, "note_not_found", true},
	{apperrors.ErrVaultPath, http.StatusBadRequest, "vault_path_error", true},
	{apperrors.ErrVault, http.StatusInternalServerError, "vault_error", false},
	{apperrors.ErrAgentExecution, http.StatusInternalServerError, "agent_execution_error", true},
	{apperrors.ErrInternal, http.StatusInternalServerError, "internal_error", false},
}

// respondWithError maps a business-layer error to an HTTP status code and
// writes the standard error envelope. The full error is always logged with
// the request path and method before anything is sent to the client.
func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	errType := "internal_error"
	message := "An unexpected internal server error occurred."

	for _, m := range errorTable {
		if errors.Is(err, m.sentinel) {
			statusCode = m.status
			errType = m.errType
			if m.leakMessage {
				message = err.Error()
			}
			break
		}
	}

	slog.Error("Request failed",
		"error_type", errType,
		"error", err,
		"status_code", statusCode,
		"path", r.URL.Path,
		"method", r.Method,
	)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message, Type: errType})
}

// respondWithJSON marshals a payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g. trying to
		// marshal a channel).
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
