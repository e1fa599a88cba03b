package agent

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool describes one capability the engine may offer to the model.
// Tools are registered explicitly: the full table is built at startup and
// passed into the engine's constructor, so there are no import-order
// side effects deciding what the agent can do.
type Tool struct {
	// Name identifies the tool to the model. Must be unique per engine.
	Name string

	// Description tells the model when to call the tool.
	Description string

	// Parameters is the JSON Schema of the tool's arguments.
	Parameters json.RawMessage

	// Handler executes the call. Arguments arrive as the raw JSON object
	// produced by the model; the returned string is fed back to the model
	// as the tool result.
	Handler func(ctx context.Context, deps Deps, args json.RawMessage) (string, error)
}

// DefaultTools returns the static tool table for the vault agent.
// Currently only the ping smoke-test tool; the note-management tools
// slot in here as they are implemented.
func DefaultTools() []Tool {
	return []Tool{
		PingTool(),
	}
}

// PingTool verifies that the agent is wired up and can see its vault
// configuration. It takes no arguments.
func PingTool() Tool {
	return Tool{
		Name:        "ping",
		Description: "Check that the agent is connected and can access vault configuration. Use this to verify the agent is running and the vault path is configured.",
		Parameters:  json.RawMessage(`{"type":"object","properties":{}}`),
		Handler: func(_ context.Context, deps Deps, _ json.RawMessage) (string, error) {
			return fmt.Sprintf("Paddy is connected. Vault path: %s", deps.VaultPath), nil
		},
	}
}
