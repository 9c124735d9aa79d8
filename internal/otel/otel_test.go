package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	eventbus "github.com/hanpama/gqlir/internal/eventbus"
	events "github.com/hanpama/gqlir/internal/events"
	runid "github.com/hanpama/gqlir/internal/runid"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup("", "gqlir", false)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestExporterOptions(t *testing.T) {
	require.Len(t, exporterOptions("localhost:4317", false), 1)
	require.Len(t, exporterOptions("localhost:4317", true), 2)
}

func TestSubscriberSpans(t *testing.T) {
	eventbus.Use(eventbus.New())
	t.Cleanup(func() { eventbus.Use(nil) })

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	newSubscriber(tp.Tracer("test")).register()

	ctx, _ := runid.NewContext(context.Background())
	eventbus.Publish(ctx, events.ManifestStart{})
	eventbus.Publish(ctx, events.OperationDecodeStart{Index: 0, Name: "Hero"})
	eventbus.Publish(ctx, events.OperationDecodeFinish{Index: 0, Name: "Hero", Type: "query", Identifier: "abc", Fragments: 1})
	eventbus.Publish(ctx, events.OperationDecodeStart{Index: 1, Name: "Broken"})
	eventbus.Publish(ctx, events.OperationDecodeFinish{Index: 1, Name: "Broken", Err: errors.New("boom")})
	eventbus.Publish(ctx, events.ManifestFinish{Operations: 1, Failures: 1})

	ended := rec.Ended()
	require.Len(t, ended, 3)
	require.Equal(t, "gqlir.operation", ended[0].Name())
	require.Equal(t, "gqlir.operation", ended[1].Name())
	require.Equal(t, "gqlir.manifest", ended[2].Name())

	manifestSpan := ended[2].SpanContext().SpanID()
	require.Equal(t, manifestSpan, ended[0].Parent().SpanID())
	require.Equal(t, manifestSpan, ended[1].Parent().SpanID())
	require.Equal(t, codes.Unset, ended[0].Status().Code)
	require.Equal(t, codes.Error, ended[1].Status().Code)
}

func TestSubscriberCompileSpan(t *testing.T) {
	eventbus.Use(eventbus.New())
	t.Cleanup(func() { eventbus.Use(nil) })

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	newSubscriber(tp.Tracer("test")).register()

	first, _ := runid.NewContext(context.Background())
	second, _ := runid.NewContext(context.Background())
	eventbus.Publish(first, events.CompileStart{Schemas: 1})
	eventbus.Publish(second, events.CompileStart{Schemas: 2})
	eventbus.Publish(second, events.CompileFinish{Operations: 3})
	require.Len(t, rec.Ended(), 1)
	eventbus.Publish(first, events.CompileFinish{Err: errors.New("invalid")})

	ended := rec.Ended()
	require.Len(t, ended, 2)
	require.Equal(t, "gqlir.compile", ended[0].Name())
	require.Equal(t, codes.Unset, ended[0].Status().Code)
	require.Equal(t, codes.Error, ended[1].Status().Code)

	// A finish without a matching start is ignored.
	eventbus.Publish(first, events.CompileFinish{})
	require.Len(t, rec.Ended(), 2)
}
