// File: internal/telemetry/tracing.go
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const serviceName = "dicefit-api"

// InitTracerProvider builds the global TracerProvider. Spans are exported
// over OTLP/HTTP to endpoint (host:port); with an empty endpoint they are
// recorded but never exported.
func InitTracerProvider(ctx context.Context, endpoint, version string, logger zerolog.Logger) (*trace.TracerProvider, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	opts := []trace.TracerProviderOption{trace.WithResource(res)}
	if endpoint != "" {
		exporter, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(), // Use http instead of https
		)
		if err != nil {
			return nil, fmt.Errorf("create otlp exporter: %w", err)
		}
		opts = append(opts, trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)))
	}

	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	if endpoint != "" {
		logger.Info().Str("endpoint", endpoint).Msg("OpenTelemetry TracerProvider initialized")
	} else {
		logger.Info().Msg("OTEL_EXPORTER_ENDPOINT not set, traces are not exported")
	}
	return tp, nil
}
