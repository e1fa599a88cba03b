// Package model defines the OpenAI-compatible wire types for the
// POST /v1/chat/completions endpoint, matching the chat completion
// format Obsidian Copilot speaks.
package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Message roles accepted on the request side.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ContentPart is a single content part in a multimodal message. Copilot
// sends array-format content only for vision requests; text-only messages
// arrive as a plain string.
type ContentPart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL json.RawMessage `json:"image_url,omitempty"`
}

// ChatMessage is a single message in the OpenAI chat format. Content is
// either a plain string or an array of typed parts; exactly one shape is
// populated after decoding.
type ChatMessage struct {
	Role    string
	Content string
	Parts   []ContentPart
}

// UnmarshalJSON supports both the string and array-of-parts content shapes.
func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	type alias struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	}

	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}

	switch raw.Role {
	case RoleSystem, RoleUser, RoleAssistant:
	default:
		return fmt.Errorf("invalid role: %q", raw.Role)
	}
	m.Role = raw.Role

	if len(raw.Content) == 0 {
		return fmt.Errorf("message content is required")
	}

	var text string
	if err := json.Unmarshal(raw.Content, &text); err == nil {
		m.Content = text
		m.Parts = nil
		return nil
	}

	var parts []ContentPart
	if err := json.Unmarshal(raw.Content, &parts); err != nil {
		return fmt.Errorf("unsupported content structure")
	}
	m.Content = ""
	m.Parts = parts
	return nil
}

// MarshalJSON mirrors UnmarshalJSON, emitting whichever content shape
// the message carries.
func (m ChatMessage) MarshalJSON() ([]byte, error) {
	type wire struct {
		Role    string `json:"role"`
		Content any    `json:"content"`
	}
	w := wire{Role: m.Role}
	if m.Parts != nil {
		w.Content = m.Parts
	} else {
		w.Content = m.Content
	}
	return json.Marshal(w)
}

// TextContent normalizes the message content to a plain string. For
// array-format content the text parts are concatenated in order and
// non-text parts (images) are dropped.
func (m ChatMessage) TextContent() string {
	if m.Parts == nil {
		return m.Content
	}
	var b strings.Builder
	for _, part := range m.Parts {
		if part.Type == "text" {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// ChatCompletionRequest is the request body for POST /v1/chat/completions.
// The optional tuning parameters are accepted for OpenAI compatibility but
// are not forwarded to the agent.
type ChatCompletionRequest struct {
	Model            string        `json:"model" validate:"required"`
	Messages         []ChatMessage `json:"messages" validate:"required,min=1"`
	Stream           bool          `json:"stream"`
	Temperature      *float64      `json:"temperature,omitempty"`
	MaxTokens        *int          `json:"max_tokens,omitempty"`
	TopP             *float64      `json:"top_p,omitempty"`
	FrequencyPenalty *float64      `json:"frequency_penalty,omitempty"`
}

// ResponseMessage is the assistant message inside a completion choice.
type ResponseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Choice is a single completion choice in the response.
type Choice struct {
	Index        int             `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

// Usage holds token accounting for the completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatCompletionResponse is the OpenAI-compatible completion response.
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}
