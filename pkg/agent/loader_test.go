package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAgent struct {
	output string
}

func (a *staticAgent) Run(_ context.Context, _ string, _ map[string]interface{}) (*AgentOutput, error) {
	return &AgentOutput{Output: a.output, ToolsCalled: []string{}, Metadata: map[string]interface{}{}}, nil
}

func TestLoader_LocatorGrammar(t *testing.T) {
	loader := NewLoader(NewRegistry())

	for _, locator := range []string{"", ":", "mod:", ":attr", "mod:a.b", "mod:a:b", "my-mod:attr", "1mod:attr", "mod.:attr"} {
		_, err := loader.Load(locator)
		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr, "locator %q", locator)
	}
}

func TestLoader_UnknownModuleListsRegisteredModules(t *testing.T) {
	registry := NewRegistry()
	registry.Register("acme.agents", "Support", &staticAgent{output: "hi"})
	loader := NewLoader(registry)

	_, err := loader.Load("missing.module:Support")

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Available, "acme.agents")
}

func TestLoader_UnknownAttributeListsTruncatedAttributes(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		registry.Register("acme.agents", name, &staticAgent{})
	}
	loader := NewLoader(registry)

	_, err := loader.Load("acme.agents:Missing")

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Len(t, loadErr.Available, 10)
	assert.Equal(t, "A", loadErr.Available[0])
}

func TestLoader_DirectAgentValue(t *testing.T) {
	registry := NewRegistry()
	registry.Register("acme.agents", "Support", &staticAgent{output: "direct"})
	loader := NewLoader(registry)

	a, err := loader.Load("acme.agents:Support")
	require.NoError(t, err)

	out, err := a.Run(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Equal(t, "direct", out.Output)
}

func TestLoader_FactoryIsInstantiated(t *testing.T) {
	registry := NewRegistry()
	registry.Register("acme.agents", "New", func() (Agent, error) {
		return &staticAgent{output: "built"}, nil
	})
	loader := NewLoader(registry)

	a, err := loader.Load("acme.agents:New")
	require.NoError(t, err)

	out, err := a.Run(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Equal(t, "built", out.Output)
}

func TestLoader_FactoryFailure(t *testing.T) {
	registry := NewRegistry()
	registry.Register("acme.agents", "New", func() (Agent, error) {
		return nil, errors.New("no credentials")
	})
	loader := NewLoader(registry)

	_, err := loader.Load("acme.agents:New")

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Reason, "no credentials")
}

func TestLoader_StringReturnIsNormalized(t *testing.T) {
	registry := NewRegistry()
	registry.Register("acme.agents", "Plain", func(_ context.Context, query string, _ map[string]interface{}) (string, error) {
		return "answer to " + query, nil
	})
	loader := NewLoader(registry)

	a, err := loader.Load("acme.agents:Plain")
	require.NoError(t, err)

	out, err := a.Run(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Equal(t, "answer to q", out.Output)
	assert.NotNil(t, out.ToolsCalled)
	assert.Empty(t, out.ToolsCalled)
	assert.NotNil(t, out.Metadata)
}

func TestLoader_MapReturnIsShallowMerged(t *testing.T) {
	registry := NewRegistry()
	registry.Register("acme.agents", "Mappy", func(_ context.Context, _ string, _ map[string]interface{}) (map[string]interface{}, error) {
		return map[string]interface{}{
			"output":       "from map",
			"tools_called": []interface{}{"search", "fetch"},
			"latency_ms":   12,
		}, nil
	})
	loader := NewLoader(registry)

	a, err := loader.Load("acme.agents:Mappy")
	require.NoError(t, err)

	out, err := a.Run(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Equal(t, "from map", out.Output)
	assert.Equal(t, []string{"search", "fetch"}, out.ToolsCalled)
	assert.Equal(t, 12, out.Metadata["latency_ms"])
}

func TestLoader_UnsupportedShape(t *testing.T) {
	registry := NewRegistry()
	registry.Register("acme.agents", "Number", 42)
	loader := NewLoader(registry)

	_, err := loader.Load("acme.agents:Number")

	var sigErr *SignatureError
	require.ErrorAs(t, err, &sigErr)
}

func TestLoader_FactoryReturningFactoryRejected(t *testing.T) {
	registry := NewRegistry()
	registry.Register("acme.agents", "Nested", func() (interface{}, error) {
		return func() (Agent, error) { return &staticAgent{}, nil }, nil
	})
	loader := NewLoader(registry)

	_, err := loader.Load("acme.agents:Nested")

	var sigErr *SignatureError
	require.ErrorAs(t, err, &sigErr)
}
