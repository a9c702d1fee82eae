// Package tools defines the remote tool endpoints and the registry that
// dispatches invocations to them. Every tool receives a mapping of named
// string arguments and returns either a plain string or a structured result.
package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/avelinak/tool-endpoint-service/internal/observability"
)

// Definition describes the metadata exposed for a tool by the listing
// endpoint. Parameters maps argument names to human-readable descriptions.
type Definition struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Parameters  map[string]string `json:"parameters,omitempty"`
}

// Handler executes a tool. Absent or empty required arguments yield a fixed
// human-readable message string as the result, not an error; errors are
// reserved for backend failures.
type Handler func(ctx context.Context, args map[string]string) (any, error)

// Tool pairs a definition with its handler.
type Tool struct {
	Definition Definition
	Handler    Handler
}

// Registry holds the registered tools, keyed by name. Registration happens
// during startup; lookups afterwards are read-only, so no locking is needed.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool. Registering a duplicate name is a programming error
// and panics during startup.
func (r *Registry) Register(def Definition, handler Handler) {
	if _, exists := r.tools[def.Name]; exists {
		panic(fmt.Sprintf("tools: duplicate registration of %q", def.Name))
	}
	r.order = append(r.order, def.Name)
	r.tools[def.Name] = Tool{Definition: def, Handler: handler}
}

// Definitions lists the registered tools in registration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition)
	}
	return defs
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Invoke dispatches an invocation to the named tool, recording invocation
// metrics. The caller is expected to have checked existence via Lookup; an
// unknown name returns an error.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]string) (any, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("tools: unknown tool %q", name)
	}

	start := time.Now()
	result, err := tool.Handler(ctx, args)
	observability.ToolInvocationDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		observability.ToolInvocationsTotal.WithLabelValues(name, "error").Inc()
		return nil, err
	}
	observability.ToolInvocationsTotal.WithLabelValues(name, "ok").Inc()
	return result, nil
}
