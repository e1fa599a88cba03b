// Package agent defines the contract between the HTTP layer and the
// LLM-driven execution engine: the conversation turn types, the run result
// with token usage, and the tool registry the engine exposes to the model.
package agent

import "context"

// Turn roles in the prior-conversation history. System messages never
// appear here; the engine applies its own system prompt.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one prior message in a conversation, in chronological order.
type Turn struct {
	Role    string
	Content string
}

// Usage carries the token counters reported by the engine. Counters the
// engine cannot determine are left nil and coerced to zero when the HTTP
// response is built.
type Usage struct {
	RequestTokens  *int
	ResponseTokens *int
	TotalTokens    *int
}

// Result is the final outcome of an agent run.
type Result struct {
	Output string
	Usage  Usage
}

// Deps is the dependency context injected into tool handlers.
type Deps struct {
	// VaultPath locates the Obsidian vault the tools operate against.
	VaultPath string
}

// Agent executes a tool-augmented LLM completion. The run may perform
// network I/O and is bounded only by ctx.
type Agent interface {
	Run(ctx context.Context, prompt string, history []Turn, deps Deps) (*Result, error)
}
