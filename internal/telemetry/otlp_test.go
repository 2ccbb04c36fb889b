package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRecorder_RecordsSpanWithNamespacedAttributes(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := NewRecorder(tp)
	r.Record(context.Background(), "sort", map[string]string{
		"column":    "Volume",
		"direction": "desc",
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "header.sort", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("pulseboard.column", "Volume"),
		attribute.String("pulseboard.direction", "desc"),
	}, spans[0].Attributes())
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.Record(context.Background(), "sort", map[string]string{"column": "x"})
	assert.NoError(t, r.Shutdown(context.Background()))
}

func TestNewOTLPRecorder_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	r, err := NewOTLPRecorder(context.Background())
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestRecorder_ShutdownWithoutOwnedProvider(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	r := NewRecorder(tp)
	assert.NoError(t, r.Shutdown(context.Background()))
}
