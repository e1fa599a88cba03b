package api

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"paddy/internal/config"
	apperrors "paddy/internal/errors"
	"paddy/internal/interfaces"
	"paddy/internal/model"
)

const bearerPrefix = "Bearer "

// ChatHandler handles the OpenAI-compatible chat completions endpoint.
type ChatHandler struct {
	service interfaces.CompletionService
	apiKey  string
}

func NewChatHandler(svc interfaces.CompletionService, cfg *config.Config) *ChatHandler {
	return &ChatHandler{service: svc, apiKey: cfg.APIKey}
}

// HandleChatCompletions godoc
// @Summary      Create a chat completion
// @Description  OpenAI-compatible chat completions endpoint used by Obsidian Copilot. Streaming is not supported.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body  model.ChatCompletionRequest  true  "Chat completion request"
// @Security     BearerAuth
// @Success      200  {object}  model.ChatCompletionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/chat/completions [post]
func (h *ChatHandler) HandleChatCompletions(w http.ResponseWriter, r *http.Request) {
	if err := h.authenticate(r); err != nil {
		respondWithError(w, r, err)
		return
	}

	var req model.ChatCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, r, fmt.Errorf("%w: invalid request payload: %s", apperrors.ErrValidation, err.Error()))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, r, err)
		return
	}

	resp, err := h.service.Complete(r.Context(), &req)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// authenticate validates the Authorization header against the configured
// API key. A missing or malformed header is a permission error (403); a
// well-formed but wrong token is an authentication error (401).
func (h *ChatHandler) authenticate(r *http.Request) error {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, bearerPrefix) {
		return fmt.Errorf("%w: missing bearer credentials", apperrors.ErrPermission)
	}
	token := strings.TrimPrefix(auth, bearerPrefix)
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.apiKey)) != 1 {
		return apperrors.ErrAuthentication
	}
	return nil
}
