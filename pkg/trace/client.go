// Package trace captures agent executions as OpenTelemetry traces and
// condenses each trace into a compact summary stored on the result.
package trace

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/neonhq/neon/pkg/agent"
	"github.com/neonhq/neon/pkg/models"
)

const tracerName = "github.com/neonhq/neon/pkg/trace"

// ExecutionResult is the outcome of one traced agent invocation.
// Status is "success" or "error"; a timeout surfaces as an error wrapping
// context.DeadlineExceeded and is reclassified by the caller.
type ExecutionResult struct {
	TraceRunID      string
	TraceID         string
	Output          *agent.AgentOutput
	Status          string
	Err             error
	ExecutionTimeMs int64
	TraceSummary    *models.TraceSummary
}

// Client executes agents inside a traced scope. The zero experiment
// string is valid; spans then carry only the run-level tags.
type Client struct {
	provider   *sdktrace.TracerProvider
	collector  *spanCollector
	experiment string
}

// ExperimentForProject names the server-side traced scope for a project.
func ExperimentForProject(projectID string) string {
	return "neon-" + projectID
}

// ExperimentForLocalSuite names the traced scope used by the CLI's
// embedded engine.
func ExperimentForLocalSuite(suiteName string) string {
	return "neon-local-" + suiteName
}

// NewClient creates a trace client with an in-memory span pipeline.
// Additional processors (an OTLP exporter, typically) may be passed to
// mirror spans to an external backend.
func NewClient(experiment string, extra ...sdktrace.SpanProcessor) *Client {
	collector := newSpanCollector()
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(collector),
		sdktrace.WithResource(sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("neon"),
			attribute.String("neon.experiment", experiment),
		)),
	}
	for _, p := range extra {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	return &Client{
		provider:   sdktrace.NewTracerProvider(opts...),
		collector:  collector,
		experiment: experiment,
	}
}

// Shutdown flushes and stops the underlying tracer provider.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.provider.Shutdown(ctx)
}

// ExecuteTraced invokes the agent under a root span named runName,
// bounded by timeout, and extracts a summary from the spans the agent
// produced. It never returns an error: failures, timeouts, and panics
// are all folded into the result.
func (c *Client) ExecuteTraced(ctx context.Context, ag agent.Agent, query string, contextMap map[string]interface{}, runName string, tags map[string]string, timeout time.Duration) *ExecutionResult {
	result := &ExecutionResult{
		TraceRunID: uuid.New().String(),
		Status:     "success",
	}

	attrs := make([]attribute.KeyValue, 0, len(tags)+2)
	attrs = append(attrs,
		attribute.String("neon.experiment", c.experiment),
		attribute.String("neon.source", "neon-engine"),
	)
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, attribute.String(k, tags[k]))
	}

	tracer := c.provider.Tracer(tracerName)
	spanCtx, rootSpan := tracer.Start(ctx, runName, oteltrace.WithAttributes(attrs...))
	traceID := rootSpan.SpanContext().TraceID()
	result.TraceID = traceID.String()

	execCtx := spanCtx
	var cancel context.CancelFunc
	if timeout > 0 {
		execCtx, cancel = context.WithTimeout(spanCtx, timeout)
		defer cancel()
	}

	start := time.Now()
	output, err := invoke(execCtx, ag, query, contextMap)
	result.ExecutionTimeMs = time.Since(start).Milliseconds()

	// A late success after the deadline still counts as a timeout.
	if err == nil && execCtx.Err() != nil {
		err = execCtx.Err()
	}
	if err != nil {
		result.Status = "error"
		result.Err = err
		rootSpan.RecordError(err)
		rootSpan.SetStatus(codes.Error, err.Error())
	} else {
		result.Output = output
		rootSpan.SetStatus(codes.Ok, "")
	}
	rootSpan.End()

	result.TraceSummary = c.summarize(traceID, result)
	return result
}

// invoke runs the agent in its own goroutine so a deadline fires even
// when the agent ignores its context. The goroutine is left to finish on
// its own after a timeout; its late result is dropped.
func invoke(ctx context.Context, ag agent.Agent, query string, contextMap map[string]interface{}) (*agent.AgentOutput, error) {
	type outcome struct {
		output *agent.AgentOutput
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("agent panicked: %v", r)}
			}
		}()
		output, err := ag.Run(ctx, query, contextMap)
		done <- outcome{output: output, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case o := <-done:
		return o.output, o.err
	}
}

// summarize condenses one finished trace into a TraceSummary by
// classifying spans on their type attribute.
func (c *Client) summarize(traceID oteltrace.TraceID, result *ExecutionResult) *models.TraceSummary {
	spans := c.collector.take(traceID)
	if len(spans) == 0 {
		return nil
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].StartTime().Before(spans[j].StartTime())
	})

	summary := &models.TraceSummary{
		TraceID:    traceID.String(),
		TotalSpans: len(spans),
		ToolCalls:  []string{},
		Status:     result.Status,
		DurationMs: result.ExecutionTimeMs,
	}
	if result.Err != nil {
		summary.Error = result.Err.Error()
	}

	for _, s := range spans {
		var spanType, toolName string
		var inTokens, outTokens int64
		for _, attr := range s.Attributes() {
			switch string(attr.Key) {
			case AttrSpanType:
				spanType = attr.Value.AsString()
			case AttrToolName:
				toolName = attr.Value.AsString()
			case AttrInputTokens:
				inTokens = attr.Value.AsInt64()
			case AttrOutputTokens:
				outTokens = attr.Value.AsInt64()
			}
		}
		switch spanType {
		case SpanTypeTool:
			if toolName == "" {
				toolName = s.Name()
			}
			summary.ToolCalls = append(summary.ToolCalls, toolName)
		case SpanTypeLLM:
			summary.LLMCalls++
			summary.InputTokens += inTokens
			summary.OutputTokens += outTokens
		}
	}
	summary.TotalTokens = summary.InputTokens + summary.OutputTokens
	return summary
}
