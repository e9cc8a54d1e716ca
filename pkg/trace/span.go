package trace

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Span attribute keys the summary extractor classifies on. Instrumented
// agents should use the helpers below rather than setting these by hand.
const (
	AttrSpanType     = "neon.span.type"
	AttrToolName     = "neon.tool.name"
	AttrInputTokens  = "neon.llm.input_tokens"
	AttrOutputTokens = "neon.llm.output_tokens"

	SpanTypeTool = "TOOL"
	SpanTypeLLM  = "CHAT_MODEL"
)

// StartToolSpan opens a span representing one tool invocation. The
// returned span must be ended by the caller.
func StartToolSpan(ctx context.Context, toolName string) (context.Context, oteltrace.Span) {
	tracer := oteltrace.SpanFromContext(ctx).TracerProvider().Tracer(tracerName)
	return tracer.Start(ctx, "tool:"+toolName,
		oteltrace.WithAttributes(
			attribute.String(AttrSpanType, SpanTypeTool),
			attribute.String(AttrToolName, toolName),
		))
}

// StartLLMSpan opens a span representing one model call. Token counts
// are attached with RecordTokens once known.
func StartLLMSpan(ctx context.Context, model string) (context.Context, oteltrace.Span) {
	tracer := oteltrace.SpanFromContext(ctx).TracerProvider().Tracer(tracerName)
	return tracer.Start(ctx, "llm:"+model,
		oteltrace.WithAttributes(
			attribute.String(AttrSpanType, SpanTypeLLM),
		))
}

// RecordTokens attaches token usage to an LLM span.
func RecordTokens(span oteltrace.Span, inputTokens, outputTokens int64) {
	span.SetAttributes(
		attribute.Int64(AttrInputTokens, inputTokens),
		attribute.Int64(AttrOutputTokens, outputTokens),
	)
}
