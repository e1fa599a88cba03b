package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paddy/internal/adapter"
	"paddy/internal/agent"
	apperrors "paddy/internal/errors"
	"paddy/internal/model"
)

func userMsg(content string) model.ChatMessage {
	return model.ChatMessage{Role: model.RoleUser, Content: content}
}

func assistantMsg(content string) model.ChatMessage {
	return model.ChatMessage{Role: model.RoleAssistant, Content: content}
}

func systemMsg(content string) model.ChatMessage {
	return model.ChatMessage{Role: model.RoleSystem, Content: content}
}

func TestPromptAndHistory(t *testing.T) {
	t.Run("Single user message yields empty history", func(t *testing.T) {
		prompt, history, err := adapter.PromptAndHistory([]model.ChatMessage{userMsg("Hello")})

		require.NoError(t, err)
		assert.Equal(t, "Hello", prompt)
		assert.Empty(t, history)
	})

	t.Run("Last user message becomes the prompt", func(t *testing.T) {
		msgs := []model.ChatMessage{
			userMsg("first question"),
			assistantMsg("first answer"),
			userMsg("second question"),
		}

		prompt, history, err := adapter.PromptAndHistory(msgs)

		require.NoError(t, err)
		assert.Equal(t, "second question", prompt)
		require.Len(t, history, 2)
		assert.Equal(t, agent.Turn{Role: agent.RoleUser, Content: "first question"}, history[0])
		assert.Equal(t, agent.Turn{Role: agent.RoleAssistant, Content: "first answer"}, history[1])
	})

	t.Run("Alternating five-message conversation keeps chronological order", func(t *testing.T) {
		msgs := []model.ChatMessage{
			userMsg("u1"),
			assistantMsg("a1"),
			userMsg("u2"),
			assistantMsg("a2"),
			userMsg("u3"),
		}

		prompt, history, err := adapter.PromptAndHistory(msgs)

		require.NoError(t, err)
		assert.Equal(t, "u3", prompt)
		require.Len(t, history, 4)
		assert.Equal(t, []agent.Turn{
			{Role: agent.RoleUser, Content: "u1"},
			{Role: agent.RoleAssistant, Content: "a1"},
			{Role: agent.RoleUser, Content: "u2"},
			{Role: agent.RoleAssistant, Content: "a2"},
		}, history)
	})

	t.Run("System messages are dropped silently", func(t *testing.T) {
		msgs := []model.ChatMessage{
			systemMsg("you are helpful"),
			userMsg("u1"),
			systemMsg("another system prompt"),
			assistantMsg("a1"),
			userMsg("u2"),
		}

		prompt, history, err := adapter.PromptAndHistory(msgs)

		require.NoError(t, err)
		assert.Equal(t, "u2", prompt)
		require.Len(t, history, 2)
		for _, turn := range history {
			assert.NotEqual(t, "you are helpful", turn.Content)
			assert.NotEqual(t, "another system prompt", turn.Content)
		}
	})

	t.Run("Array-format content is normalized to text", func(t *testing.T) {
		msgs := []model.ChatMessage{
			{
				Role: model.RoleUser,
				Parts: []model.ContentPart{
					{Type: "text", Text: "look at "},
					{Type: "image_url"},
					{Type: "text", Text: "this note"},
				},
			},
		}

		prompt, history, err := adapter.PromptAndHistory(msgs)

		require.NoError(t, err)
		assert.Equal(t, "look at this note", prompt)
		assert.Empty(t, history)
	})

	t.Run("Failure - empty messages", func(t *testing.T) {
		_, _, err := adapter.PromptAndHistory(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Failure - no user message", func(t *testing.T) {
		msgs := []model.ChatMessage{
			systemMsg("system only"),
			assistantMsg("assistant only"),
		}

		_, _, err := adapter.PromptAndHistory(msgs)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, err.Error(), "user message")
	})
}

func TestBuildChatResponse(t *testing.T) {
	t.Run("Wraps output with usage counters", func(t *testing.T) {
		prompt, completion, total := 10, 20, 30
		usage := agent.Usage{RequestTokens: &prompt, ResponseTokens: &completion, TotalTokens: &total}

		resp := adapter.BuildChatResponse("hi there", "gpt-4.1-nano", usage)

		assert.Equal(t, "chat.completion", resp.Object)
		assert.Equal(t, "gpt-4.1-nano", resp.Model)
		assert.NotZero(t, resp.Created)
		require.Len(t, resp.Choices, 1)
		assert.Equal(t, 0, resp.Choices[0].Index)
		assert.Equal(t, "assistant", resp.Choices[0].Message.Role)
		assert.Equal(t, "hi there", resp.Choices[0].Message.Content)
		assert.Equal(t, "stop", resp.Choices[0].FinishReason)
		assert.Equal(t, 10, resp.Usage.PromptTokens)
		assert.Equal(t, 20, resp.Usage.CompletionTokens)
		assert.Equal(t, 30, resp.Usage.TotalTokens)
	})

	t.Run("Nil token counters default to zero", func(t *testing.T) {
		total := 5

		resp := adapter.BuildChatResponse("out", "m", agent.Usage{TotalTokens: &total})

		assert.Equal(t, 0, resp.Usage.PromptTokens)
		assert.Equal(t, 0, resp.Usage.CompletionTokens)
		assert.Equal(t, 5, resp.Usage.TotalTokens)
	})

	t.Run("Successive calls produce distinct IDs", func(t *testing.T) {
		first := adapter.BuildChatResponse("a", "m", agent.Usage{})
		second := adapter.BuildChatResponse("b", "m", agent.Usage{})

		assert.True(t, len(first.ID) > len("chatcmpl-"))
		assert.Contains(t, first.ID, "chatcmpl-")
		assert.NotEqual(t, first.ID, second.ID)
	})
}
