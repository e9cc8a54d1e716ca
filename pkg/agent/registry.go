package agent

import (
	"sort"
	"strings"
	"sync"
)

// Registry maps "<module>" -> "<attribute>" -> registered value. A
// compiled binary has no dynamic module search path, so agents under
// test link into the process and register themselves, typically from an
// init function in the package that defines them.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]map[string]interface{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]map[string]interface{})}
}

// defaultRegistry backs the package-level Register/Default helpers.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register binds a value under module and attribute, replacing any
// previous binding. The value's shape is validated at load time, not
// here, so registration never fails.
func (r *Registry) Register(module, attribute string, value interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	attrs, ok := r.modules[module]
	if !ok {
		attrs = make(map[string]interface{})
		r.modules[module] = attrs
	}
	attrs[attribute] = value
}

// Register binds a value in the process-wide registry.
func Register(module, attribute string, value interface{}) {
	defaultRegistry.Register(module, attribute, value)
}

// lookup returns the value bound to module/attribute.
func (r *Registry) lookup(module, attribute string) (interface{}, bool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attrs, moduleOK := r.modules[module]
	if !moduleOK {
		return nil, false, false
	}
	v, ok := attrs[attribute]
	return v, true, ok
}

// attributesOf lists a module's registered attributes, sorted.
func (r *Registry) attributesOf(module string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attrs := r.modules[module]
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// moduleNames lists registered module names, sorted.
func (r *Registry) moduleNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseLocator splits "<module>:<attribute>". The module part is a
// dotted identifier, the attribute a single identifier; both non-empty.
func parseLocator(locator string) (module, attribute string, ok bool) {
	module, attribute, found := strings.Cut(locator, ":")
	if !found || module == "" || attribute == "" {
		return "", "", false
	}
	if strings.Contains(attribute, ".") || strings.Contains(attribute, ":") {
		return "", "", false
	}
	for _, part := range strings.Split(module, ".") {
		if !isIdentifier(part) {
			return "", "", false
		}
	}
	if !isIdentifier(attribute) {
		return "", "", false
	}
	return module, attribute, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
