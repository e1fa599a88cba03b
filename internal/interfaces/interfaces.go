package interfaces

import (
	"context"

	"paddy/internal/model"
)

// This file defines the interfaces the API layer depends on.
// Depending on interfaces instead of concrete service types decouples the
// handlers from the service implementations and lets tests substitute mocks.

// CompletionService defines the contract for chat completion business logic.
type CompletionService interface {
	Complete(ctx context.Context, req *model.ChatCompletionRequest) (*model.ChatCompletionResponse, error)
}
