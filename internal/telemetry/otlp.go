// Package telemetry traces header interactions to an OTLP endpoint.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// EndpointEnv enables tracing when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the reported service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName = "pulseboard"
	tracerName         = "pulseboard/ui"
	attrPrefix         = "pulseboard."
)

// Recorder turns board interactions into spans.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	provider *sdktrace.TracerProvider // nil when the caller owns the provider
	tracer   oteltrace.Tracer
}

// NewOTLPRecorder creates a recorder exporting over OTLP/HTTP if
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Returns nil, nil when tracing is disabled.
func NewOTLPRecorder(ctx context.Context) (*Recorder, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local collectors
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &Recorder{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
	}, nil
}

// NewRecorder records through an existing tracer provider. Shutdown is left to the caller.
func NewRecorder(tp oteltrace.TracerProvider) *Recorder {
	return &Recorder{tracer: tp.Tracer(tracerName)}
}

// Record emits a zero-duration span "header.<action>" with attrs under the
// pulseboard.* namespace.
func (r *Recorder) Record(ctx context.Context, action string, attrs map[string]string) {
	if r == nil {
		return
	}
	kvs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kvs = append(kvs, attribute.String(attrPrefix+k, v))
	}
	_, span := r.tracer.Start(ctx, "header."+action, oteltrace.WithAttributes(kvs...))
	span.End()
}

// Shutdown flushes and closes the exporter, if this recorder owns one.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
