package errors

import (
	"errors"
	"fmt"
)

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.

var (
	// ErrValidation signifies that input data provided by a client failed
	// validation (empty messages, no user message, streaming requested).
	// Mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication signifies that the presented bearer token does not
	// match the configured API key.
	// Mapped to a 401 Unauthorized HTTP status.
	ErrAuthentication = errors.New("invalid API key")

	// ErrPermission signifies that no usable credential was presented at all
	// (missing or malformed Authorization header).
	// Mapped to a 403 Forbidden HTTP status.
	ErrPermission = errors.New("not authenticated")

	// ErrAgentExecution signifies that the agent run failed or produced no
	// result. The underlying cause is logged server-side and never sent to
	// the client.
	// Mapped to a 500 Internal Server Error HTTP status.
	ErrAgentExecution = errors.New("agent execution failed")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// Mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)

// Vault errors are reserved for the note-management tools. No current route
// returns them, but the API layer already knows how to map them so tool
// handlers can start using them without touching the transport code.
var (
	// ErrVault is the base error for everything touching the Obsidian vault.
	// Anything wrapping it that is not a more specific vault error maps to
	// a 500 Internal Server Error HTTP status.
	ErrVault = errors.New("vault error")

	// ErrNoteNotFound signifies that a requested note does not exist in the
	// vault. Mapped to a 404 Not Found HTTP status.
	ErrNoteNotFound = fmt.Errorf("%w: note not found", ErrVault)

	// ErrVaultPath signifies that a path escapes or otherwise does not point
	// into the configured vault. Mapped to a 400 Bad Request HTTP status.
	ErrVaultPath = fmt.Errorf("%w: invalid vault path", ErrVault)
)
