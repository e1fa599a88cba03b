package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"paddy/internal/adapter"
	"paddy/internal/agent"
	apperrors "paddy/internal/errors"
	"paddy/internal/model"
)

// ChatService turns an OpenAI-compatible completion request into an agent
// run and wraps the result back into the OpenAI response shape. It holds no
// per-request state; everything lives on the stack of Complete.
type ChatService struct {
	agent     agent.Agent
	vaultPath string
}

func NewChatService(a agent.Agent, vaultPath string) *ChatService {
	return &ChatService{agent: a, vaultPath: vaultPath}
}

// Complete handles one chat completion request end to end: stream check,
// message conversion, agent run, response building. All failures come back
// as wrapped sentinel errors for the API layer to map to status codes.
func (s *ChatService) Complete(ctx context.Context, req *model.ChatCompletionRequest) (*model.ChatCompletionResponse, error) {
	slog.Info("Chat completion request received",
		"model", req.Model,
		"message_count", len(req.Messages),
		"stream", req.Stream,
	)

	if req.Stream {
		return nil, fmt.Errorf("%w: streaming not yet supported, set stream to false in Copilot settings or enable CORS bypass", apperrors.ErrValidation)
	}

	prompt, history, err := adapter.PromptAndHistory(req.Messages)
	if err != nil {
		return nil, err
	}

	deps := agent.Deps{VaultPath: s.vaultPath}

	slog.Info("Agent run started",
		"user_prompt_length", len(prompt),
		"history_length", len(history),
	)

	start := time.Now()
	result, err := s.agent.Run(ctx, prompt, history, deps)
	if err != nil {
		// The cause stays in the server log; the client only ever sees
		// the generic agent-execution message.
		slog.Error("Agent run failed", "error", err)
		return nil, fmt.Errorf("%w: check server logs for details", apperrors.ErrAgentExecution)
	}
	if result == nil {
		slog.Error("Agent returned no result")
		return nil, fmt.Errorf("%w: agent returned no result", apperrors.ErrAgentExecution)
	}

	resp := adapter.BuildChatResponse(result.Output, req.Model, result.Usage)

	slog.Info("Chat completion response built",
		"total_tokens", resp.Usage.TotalTokens,
		"duration_seconds", time.Since(start).Seconds(),
	)

	return resp, nil
}
