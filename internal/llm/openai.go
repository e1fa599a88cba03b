// Package llm implements the agent runtime on top of an OpenAI-compatible
// chat completions API. It is the only component that talks to the LLM
// provider; everything above it depends on the agent.Agent interface.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"paddy/internal/agent"
)

// maxToolRounds bounds the tool-call loop so a model that keeps requesting
// tools cannot spin the request forever.
const maxToolRounds = 5

type openaiAgent struct {
	client       *http.Client
	baseURL      string
	apiKey       string
	model        string
	systemPrompt string
	tools        []agent.Tool
}

// NewOpenAIAgent builds an agent.Agent that runs completions against an
// OpenAI-compatible endpoint at baseURL (e.g. https://api.openai.com/v1),
// executing registered tools when the model requests them.
func NewOpenAIAgent(baseURL, apiKey, model, systemPrompt string, tools []agent.Tool) agent.Agent {
	return &openaiAgent{
		client:       &http.Client{},
		baseURL:      baseURL,
		apiKey:       apiKey,
		model:        model,
		systemPrompt: systemPrompt,
		tools:        tools,
	}
}

// Wire types for the provider API. Kept local to this package; the rest of
// the application only sees agent.Result.
type chatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []toolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

type toolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type toolSpec struct {
	Type     string `json:"type"`
	Function struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Parameters  json.RawMessage `json:"parameters"`
	} `json:"function"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Tools    []toolSpec    `json:"tools,omitempty"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (a *openaiAgent) Run(ctx context.Context, prompt string, history []agent.Turn, deps agent.Deps) (*agent.Result, error) {
	messages := make([]chatMessage, 0, len(history)+2)
	if a.systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: a.systemPrompt})
	}
	for _, turn := range history {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	var promptTokens, completionTokens, totalTokens int

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.complete(ctx, messages)
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("provider returned no choices")
		}

		promptTokens += resp.Usage.PromptTokens
		completionTokens += resp.Usage.CompletionTokens
		totalTokens += resp.Usage.TotalTokens

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return &agent.Result{
				Output: msg.Content,
				Usage: agent.Usage{
					RequestTokens:  &promptTokens,
					ResponseTokens: &completionTokens,
					TotalTokens:    &totalTokens,
				},
			}, nil
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			output, err := a.dispatch(ctx, call, deps)
			if err != nil {
				// The model gets the failure as a tool result and can
				// decide how to proceed; the run itself continues.
				slog.Warn("Tool call failed", "tool", call.Function.Name, "error", err)
				output = fmt.Sprintf("tool error: %v", err)
			}
			messages = append(messages, chatMessage{
				Role:       "tool",
				Content:    output,
				ToolCallID: call.ID,
			})
		}
	}

	return nil, fmt.Errorf("tool call limit of %d rounds exceeded", maxToolRounds)
}

// dispatch finds the registered tool named by the call and executes it.
func (a *openaiAgent) dispatch(ctx context.Context, call toolCall, deps agent.Deps) (string, error) {
	for _, tool := range a.tools {
		if tool.Name == call.Function.Name {
			return tool.Handler(ctx, deps, json.RawMessage(call.Function.Arguments))
		}
	}
	return "", fmt.Errorf("unknown tool: %s", call.Function.Name)
}

// complete performs one non-streaming chat completion round trip.
func (a *openaiAgent) complete(ctx context.Context, messages []chatMessage) (*chatResponse, error) {
	req := chatRequest{
		Model:    a.model,
		Messages: messages,
		Stream:   false,
	}
	for _, tool := range a.tools {
		spec := toolSpec{Type: "function"}
		spec.Function.Name = tool.Name
		spec.Function.Description = tool.Description
		spec.Function.Parameters = tool.Parameters
		req.Tools = append(req.Tools, spec)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("provider returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	return &chatResp, nil
}
