package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"paddy/internal/agent"
	mock_agent "paddy/internal/agent/mocks"
	apperrors "paddy/internal/errors"
	"paddy/internal/model"
	"paddy/internal/service"
)

const testVaultPath = "/vault"

func setupChatService(t *testing.T) (*service.ChatService, *mock_agent.MockAgent) {
	mockAgent := mock_agent.NewMockAgent(t)
	return service.NewChatService(mockAgent, testVaultPath), mockAgent
}

func intPtr(n int) *int { return &n }

func TestChatService_Complete(t *testing.T) {
	ctx := context.Background()

	request := func() *model.ChatCompletionRequest {
		return &model.ChatCompletionRequest{
			Model: "gpt-4.1-nano",
			Messages: []model.ChatMessage{
				{Role: model.RoleUser, Content: "Hello"},
			},
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, mockAgent := setupChatService(t)
		result := &agent.Result{
			Output: "Hi! How can I help with your vault?",
			Usage: agent.Usage{
				RequestTokens:  intPtr(12),
				ResponseTokens: intPtr(9),
				TotalTokens:    intPtr(21),
			},
		}
		mockAgent.On("Run", mock.Anything, "Hello", []agent.Turn{}, agent.Deps{VaultPath: testVaultPath}).
			Return(result, nil).Once()

		resp, err := svc.Complete(ctx, request())

		require.NoError(t, err)
		assert.Equal(t, "chat.completion", resp.Object)
		assert.Equal(t, "gpt-4.1-nano", resp.Model)
		require.Len(t, resp.Choices, 1)
		assert.Equal(t, result.Output, resp.Choices[0].Message.Content)
		assert.Equal(t, 21, resp.Usage.TotalTokens)
	})

	t.Run("Success - prior turns forwarded as history", func(t *testing.T) {
		svc, mockAgent := setupChatService(t)
		req := &model.ChatCompletionRequest{
			Model: "gpt-4.1-nano",
			Messages: []model.ChatMessage{
				{Role: model.RoleSystem, Content: "ignored"},
				{Role: model.RoleUser, Content: "earlier"},
				{Role: model.RoleAssistant, Content: "reply"},
				{Role: model.RoleUser, Content: "latest"},
			},
		}
		expectedHistory := []agent.Turn{
			{Role: agent.RoleUser, Content: "earlier"},
			{Role: agent.RoleAssistant, Content: "reply"},
		}
		mockAgent.On("Run", mock.Anything, "latest", expectedHistory, agent.Deps{VaultPath: testVaultPath}).
			Return(&agent.Result{Output: "ok"}, nil).Once()

		resp, err := svc.Complete(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Choices[0].Message.Content)
		assert.Zero(t, resp.Usage.TotalTokens)
	})

	t.Run("Failure - streaming requested", func(t *testing.T) {
		svc, _ := setupChatService(t)
		req := request()
		req.Stream = true

		_, err := svc.Complete(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, err.Error(), "streaming not yet supported")
	})

	t.Run("Failure - no user message", func(t *testing.T) {
		svc, _ := setupChatService(t)
		req := &model.ChatCompletionRequest{
			Model:    "gpt-4.1-nano",
			Messages: []model.ChatMessage{{Role: model.RoleAssistant, Content: "only me"}},
		}

		_, err := svc.Complete(ctx, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Failure - agent error is hidden from the caller", func(t *testing.T) {
		svc, mockAgent := setupChatService(t)
		mockAgent.On("Run", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("provider exploded: secret details")).Once()

		_, err := svc.Complete(ctx, request())

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAgentExecution)
		assert.NotContains(t, err.Error(), "secret details")
	})

	t.Run("Failure - nil agent result", func(t *testing.T) {
		svc, mockAgent := setupChatService(t)
		mockAgent.On("Run", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil).Once()

		_, err := svc.Complete(ctx, request())

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrAgentExecution)
	})
}
