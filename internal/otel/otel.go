package otel

import (
	"context"
	"sync"

	eventbus "github.com/hanpama/gqlir/internal/eventbus"
	events "github.com/hanpama/gqlir/internal/events"
	runid "github.com/hanpama/gqlir/internal/runid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured. The collector is dialed
// over TLS unless plaintext is set.
func Setup(endpoint, service string, plaintext bool) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(), exporterOptions(endpoint, plaintext)...)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := newSubscriber(otel.Tracer("gqlir"))
	sub.register()

	return tp.Shutdown, nil
}

func exporterOptions(endpoint string, plaintext bool) []otlptracegrpc.Option {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(endpoint)}
	if plaintext {
		opts = append(opts, otlptracegrpc.WithDialOption(
			grpc.WithTransportCredentials(insecure.NewCredentials())))
	}
	return opts
}

type operationKey struct {
	run   string
	index int
}

type subscriber struct {
	tracer        trace.Tracer
	compileSpans  sync.Map // run id -> trace.Span
	manifestSpans sync.Map // run id -> trace.Span
	opSpans       sync.Map // operationKey -> trace.Span
}

func newSubscriber(tracer trace.Tracer) *subscriber {
	return &subscriber{tracer: tracer}
}

func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.CompileStart) {
		rid, _ := runid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "gqlir.compile")
		span.SetAttributes(attribute.Int("gqlir.schema_sources", e.Schemas))
		s.compileSpans.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.CompileFinish) {
		rid, _ := runid.FromContext(ctx)
		v, ok := s.compileSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(
			attribute.Int("gqlir.operations", e.Operations),
			attribute.Int("gqlir.fragments", e.Fragments),
		)
		endWithError(span, e.Err)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.ManifestStart) {
		rid, _ := runid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "gqlir.manifest")
		s.manifestSpans.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.ManifestFinish) {
		rid, _ := runid.FromContext(ctx)
		v, ok := s.manifestSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(
			attribute.Int("gqlir.operations", e.Operations),
			attribute.Int("gqlir.failures", e.Failures),
		)
		endWithError(span, e.Err)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.OperationDecodeStart) {
		rid, _ := runid.FromContext(ctx)
		parent := ctx
		if v, ok := s.manifestSpans.Load(rid); ok {
			parent = trace.ContextWithSpan(ctx, v.(trace.Span))
		}
		_, span := s.tracer.Start(parent, "gqlir.operation")
		span.SetAttributes(
			attribute.Int("gqlir.operation.index", e.Index),
			attribute.String("graphql.operation.name", e.Name),
		)
		s.opSpans.Store(operationKey{run: rid, index: e.Index}, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.OperationDecodeFinish) {
		rid, _ := runid.FromContext(ctx)
		v, ok := s.opSpans.LoadAndDelete(operationKey{run: rid, index: e.Index})
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(
			attribute.String("graphql.operation.type", e.Type),
			attribute.String("gqlir.operation.id", e.Identifier),
			attribute.Int("gqlir.operation.fragments", e.Fragments),
		)
		endWithError(span, e.Err)
	})
}

func endWithError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
