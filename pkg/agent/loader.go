package agent

import (
	"context"
	"fmt"
)

// Loader resolves locators against a registry.
type Loader struct {
	registry *Registry
}

// NewLoader creates a loader over the given registry; nil means the
// process-wide one.
func NewLoader(registry *Registry) *Loader {
	if registry == nil {
		registry = defaultRegistry
	}
	return &Loader{registry: registry}
}

// Load resolves a "<module>:<attribute>" locator to an Agent.
//
// Resolution order: a zero-argument factory is invoked and its product
// adapted; a value already implementing Agent is used directly; a plain
// function is wrapped so string and map returns normalize to AgentOutput.
func (l *Loader) Load(locator string) (Agent, error) {
	module, attribute, ok := parseLocator(locator)
	if !ok {
		return nil, &LoadError{
			Locator: locator,
			Reason:  "locator must be '<module>:<attribute>' with dotted module and single attribute",
		}
	}

	value, moduleOK, attrOK := l.registry.lookup(module, attribute)
	if !moduleOK {
		return nil, &LoadError{
			Locator:   locator,
			Reason:    fmt.Sprintf("module %q is not registered", module),
			Available: truncateAvailable(l.registry.moduleNames()),
		}
	}
	if !attrOK {
		return nil, &LoadError{
			Locator:   locator,
			Reason:    fmt.Sprintf("module %q has no attribute %q", module, attribute),
			Available: truncateAvailable(l.registry.attributesOf(module)),
		}
	}

	return l.adapt(locator, value, true)
}

// adapt turns a registered value into an Agent. allowFactory guards
// against factories returning factories.
func (l *Loader) adapt(locator string, value interface{}, allowFactory bool) (Agent, error) {
	switch v := value.(type) {
	case nil:
		return nil, &SignatureError{Locator: locator, Reason: "registered value is nil"}

	case func() (Agent, error):
		if !allowFactory {
			return nil, &SignatureError{Locator: locator, Reason: "factory returned another factory"}
		}
		a, err := v()
		if err != nil {
			return nil, &LoadError{Locator: locator, Reason: fmt.Sprintf("factory failed: %v", err)}
		}
		return l.adapt(locator, a, false)

	case func() Agent:
		if !allowFactory {
			return nil, &SignatureError{Locator: locator, Reason: "factory returned another factory"}
		}
		return l.adapt(locator, v(), false)

	case func() (interface{}, error):
		if !allowFactory {
			return nil, &SignatureError{Locator: locator, Reason: "factory returned another factory"}
		}
		out, err := v()
		if err != nil {
			return nil, &LoadError{Locator: locator, Reason: fmt.Sprintf("factory failed: %v", err)}
		}
		return l.adapt(locator, out, false)

	case func() interface{}:
		if !allowFactory {
			return nil, &SignatureError{Locator: locator, Reason: "factory returned another factory"}
		}
		return l.adapt(locator, v(), false)

	case Agent:
		return v, nil

	case func(ctx context.Context, query string, contextMap map[string]interface{}) (*AgentOutput, error):
		return Func(v), nil

	case func(ctx context.Context, query string, contextMap map[string]interface{}) (string, error):
		return Func(func(ctx context.Context, query string, contextMap map[string]interface{}) (*AgentOutput, error) {
			s, err := v(ctx, query, contextMap)
			if err != nil {
				return nil, err
			}
			return outputFromString(s), nil
		}), nil

	case func(ctx context.Context, query string, contextMap map[string]interface{}) (map[string]interface{}, error):
		return Func(func(ctx context.Context, query string, contextMap map[string]interface{}) (*AgentOutput, error) {
			m, err := v(ctx, query, contextMap)
			if err != nil {
				return nil, err
			}
			return outputFromMap(m), nil
		}), nil

	case func(ctx context.Context, query string) (string, error):
		return Func(func(ctx context.Context, query string, _ map[string]interface{}) (*AgentOutput, error) {
			s, err := v(ctx, query)
			if err != nil {
				return nil, err
			}
			return outputFromString(s), nil
		}), nil

	default:
		return nil, &SignatureError{
			Locator: locator,
			Reason:  fmt.Sprintf("unsupported shape %T; want an Agent, a factory, or a func(ctx, query, context)", value),
		}
	}
}

func outputFromString(s string) *AgentOutput {
	return &AgentOutput{
		Output:      s,
		ToolsCalled: []string{},
		Metadata:    map[string]interface{}{},
	}
}

// outputFromMap shallow-merges a map return over the default output.
// Recognized keys populate the typed fields; everything else lands in
// Metadata.
func outputFromMap(m map[string]interface{}) *AgentOutput {
	out := &AgentOutput{
		ToolsCalled: []string{},
		Metadata:    map[string]interface{}{},
	}
	for k, v := range m {
		switch k {
		case "output":
			if s, ok := v.(string); ok {
				out.Output = s
				continue
			}
			out.Output = fmt.Sprintf("%v", v)
		case "tools_called":
			out.ToolsCalled = toStringSlice(v)
		case "metadata":
			if meta, ok := v.(map[string]interface{}); ok {
				for mk, mv := range meta {
					out.Metadata[mk] = mv
				}
			}
		default:
			out.Metadata[k] = v
		}
	}
	return out
}

func toStringSlice(v interface{}) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}
