package trace

import (
	"context"
	"sync"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// spanCollector is a SpanProcessor that retains finished spans in memory,
// keyed by trace id, so a summary can be extracted right after the traced
// scope closes. Collected traces must be released explicitly or they
// accumulate for the life of the process.
type spanCollector struct {
	mu     sync.Mutex
	traces map[oteltrace.TraceID][]sdktrace.ReadOnlySpan
}

func newSpanCollector() *spanCollector {
	return &spanCollector{traces: make(map[oteltrace.TraceID][]sdktrace.ReadOnlySpan)}
}

func (c *spanCollector) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (c *spanCollector) OnEnd(s sdktrace.ReadOnlySpan) {
	traceID := s.SpanContext().TraceID()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.traces[traceID] = append(c.traces[traceID], s)
}

func (c *spanCollector) Shutdown(context.Context) error { return nil }

func (c *spanCollector) ForceFlush(context.Context) error { return nil }

// take removes and returns all finished spans of one trace.
func (c *spanCollector) take(traceID oteltrace.TraceID) []sdktrace.ReadOnlySpan {
	c.mu.Lock()
	defer c.mu.Unlock()
	spans := c.traces[traceID]
	delete(c.traces, traceID)
	return spans
}
