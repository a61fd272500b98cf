// Package telemetry sets up OpenTelemetry tracing for the landing CLI.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"impractical.co/landing/internal/config"
)

// ServiceName identifies the landing site in exported traces.
const ServiceName = "landing"

// Setup initialises OpenTelemetry tracing from the process settings.
//
// Tracing is opt-in: when OTelEndpoint is empty or OTelEnabled is false,
// Setup returns a no-op shutdown function and no global provider is
// registered, so spans started by the renderer and the server go nowhere.
//
// The returned shutdown function flushes pending spans and should be
// deferred by the caller.
func Setup(ctx context.Context, rt config.Runtime, version string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if !rt.OTelEnabled || rt.OTelEndpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(rt.OTelEndpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
