// Package adapter converts between the OpenAI chat completion message
// format (used by Obsidian Copilot) and the agent's conversation types.
// It is shared because it will serve both the non-streaming and a future
// streaming chat endpoint.
package adapter

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"paddy/internal/agent"
	apperrors "paddy/internal/errors"
	"paddy/internal/model"
)

// PromptAndHistory extracts the most recent user message as the prompt and
// converts all prior user/assistant messages into the agent's turn history.
//
// System messages are discarded entirely; the agent applies its own system
// prompt. The returned history is in chronological order, with the extracted
// prompt removed.
func PromptAndHistory(messages []model.ChatMessage) (string, []agent.Turn, error) {
	if len(messages) == 0 {
		return "", nil, fmt.Errorf("%w: messages array must not be empty", apperrors.ErrValidation)
	}

	var (
		prompt        string
		promptFound   bool
		systemSkipped int
	)

	// Scan newest to oldest. The first user message becomes the prompt;
	// everything else (minus system messages) is kept for the history.
	prior := make([]model.ChatMessage, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		switch {
		case msg.Role == model.RoleUser && !promptFound:
			prompt = msg.TextContent()
			promptFound = true
		case msg.Role == model.RoleSystem:
			systemSkipped++
		default:
			prior = append(prior, msg)
		}
	}

	if !promptFound {
		return "", nil, fmt.Errorf("%w: messages must contain at least one user message", apperrors.ErrValidation)
	}

	// prior was collected newest-first; reverse back to chronological order.
	history := make([]agent.Turn, 0, len(prior))
	for i := len(prior) - 1; i >= 0; i-- {
		msg := prior[i]
		role := agent.RoleUser
		if msg.Role == model.RoleAssistant {
			role = agent.RoleAssistant
		}
		history = append(history, agent.Turn{Role: role, Content: msg.TextContent()})
	}

	slog.Debug("Converted OpenAI messages to agent format",
		"total_messages", len(messages),
		"history_messages", len(history),
		"system_messages_skipped", systemSkipped,
	)

	return prompt, history, nil
}

// BuildChatResponse wraps the agent's output into an OpenAI-compatible chat
// completion response. The ID is unique per call; nil token counters are
// coerced to zero.
func BuildChatResponse(output, modelName string, usage agent.Usage) *model.ChatCompletionResponse {
	id := "chatcmpl-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:29]

	return &model.ChatCompletionResponse{
		ID:      id,
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   modelName,
		Choices: []model.Choice{
			{
				Index: 0,
				Message: model.ResponseMessage{
					Role:    model.RoleAssistant,
					Content: output,
				},
				FinishReason: "stop",
			},
		},
		Usage: model.Usage{
			PromptTokens:     intOrZero(usage.RequestTokens),
			CompletionTokens: intOrZero(usage.ResponseTokens),
			TotalTokens:      intOrZero(usage.TotalTokens),
		},
	}
}

func intOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
