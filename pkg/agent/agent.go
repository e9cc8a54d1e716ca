// Package agent defines the agent contract and the registry-backed
// loader that resolves suite locators to executable agents.
package agent

import "context"

// AgentOutput is the normalized result of one agent invocation.
type AgentOutput struct {
	Output      string                 `json:"output"`
	ToolsCalled []string               `json:"tools_called"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// Agent is anything that can answer a query. Implementations are
// registered under a "<module>:<attribute>" locator and resolved by the
// loader at run start.
type Agent interface {
	Run(ctx context.Context, query string, contextMap map[string]interface{}) (*AgentOutput, error)
}

// Func adapts a plain function to the Agent interface.
type Func func(ctx context.Context, query string, contextMap map[string]interface{}) (*AgentOutput, error)

// Run implements Agent.
func (f Func) Run(ctx context.Context, query string, contextMap map[string]interface{}) (*AgentOutput, error) {
	return f(ctx, query, contextMap)
}
