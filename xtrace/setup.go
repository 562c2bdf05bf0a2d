package xtrace

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type Config struct {
	// Enabled installs a local tracer provider that logs finished spans.
	Enabled      bool `json:",optional"`
	AttrMaxBytes int  `json:",default=65536"`
}

// Setup installs the global tracer provider described by cfg and returns its
// shutdown function. With tracing disabled it does nothing.
func Setup(cfg Config) func(context.Context) error {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(NewLogProcessor(cfg.AttrMaxBytes)),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown
}
