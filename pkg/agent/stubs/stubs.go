// Package stubs registers built-in agents used for smoke-testing a
// deployment without a real agent wired in. Importing the package is
// enough to make them loadable.
package stubs

import (
	"context"
	"fmt"
	"time"

	"github.com/neonhq/neon/pkg/agent"
)

func init() {
	agent.Register("neon.stubs", "EchoAgent", agent.Func(echo))
	agent.Register("neon.stubs", "SlowAgent", func() (agent.Agent, error) {
		return agent.Func(slow), nil
	})
}

// echo answers with the query itself, calling no tools.
func echo(_ context.Context, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
	meta := map[string]interface{}{"stub": "echo"}
	if len(contextMap) > 0 {
		meta["context_keys"] = len(contextMap)
	}
	return &agent.AgentOutput{
		Output:      fmt.Sprintf("echo: %s", query),
		ToolsCalled: []string{},
		Metadata:    meta,
	}, nil
}

// slow sleeps until the context expires or one second passes. Useful for
// exercising per-case timeouts end to end.
func slow(ctx context.Context, query string, _ map[string]interface{}) (*agent.AgentOutput, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(time.Second):
	}
	return &agent.AgentOutput{
		Output:      "finally: " + query,
		ToolsCalled: []string{},
		Metadata:    map[string]interface{}{"stub": "slow"},
	}, nil
}
