package cmd

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/inference-sim/bankers-sim"

// initTracing installs a tracer provider exporting spans to outputFile with
// the stdout exporter. An empty outputFile leaves the global no-op provider in
// place. The returned function flushes and closes the exporter.
func initTracing(outputFile string) (func(context.Context) error, error) {
	if outputFile == "" {
		return func(context.Context) error { return nil }, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, err
	}
	return installTracing(f)
}

func installTracing(w io.WriteCloser) (func(context.Context) error, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	res := resource.NewSchemaless(attribute.String("service.name", "bankers-sim"))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return func(ctx context.Context) error {
		err := tp.Shutdown(ctx)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		return err
	}, nil
}

// startSpan starts a span on the global tracer provider.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, oteltrace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, oteltrace.WithAttributes(attrs...))
}

// endSpan records err on span, if any, and ends it.
func endSpan(span oteltrace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
