// Package telemetry wraps OpenTelemetry setup for the service. Telemetry
// failures are logged and swallowed — the planner must keep working when
// no exporter is available.
package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/voyageai/voyageai"

var (
	mu       sync.Mutex
	provider *sdktrace.TracerProvider
)

// Init installs a tracer provider with a stdout exporter. Sampling is
// always-on; call Shutdown on exit to flush spans.
func Init(serviceName string) error {
	mu.Lock()
	defer mu.Unlock()

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("creating stdout trace exporter: %w", err)
	}

	provider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(provider)
	return nil
}

// Shutdown flushes and stops the tracer provider, if one was installed.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if provider == nil {
		return nil
	}
	err := provider.Shutdown(ctx)
	provider = nil
	return err
}

// StartStageSpan opens a span for one pipeline stage. It is safe to call
// before Init; the no-op global tracer is used in that case.
func StartStageSpan(ctx context.Context, stageID string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, "pipeline.stage",
		trace.WithAttributes(attribute.String("stage.id", stageID)))
}

// StartRequestSpan opens a span covering one plan request.
func StartRequestSpan(ctx context.Context, requestID string) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	return tracer.Start(ctx, "plan.request",
		trace.WithAttributes(attribute.String("request.id", requestID)))
}
