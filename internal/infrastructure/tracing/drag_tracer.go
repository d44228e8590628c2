// Package tracing exports drag gestures as OpenTelemetry spans.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	instrumentationName = "github.com/bnema/dockyard/drag"
	dragSpanName        = "dock.drag"
)

// Config configures the OTLP exporter.
type Config struct {
	// Endpoint is the OTLP/HTTP host:port. Empty defers to OTEL_EXPORTER_OTLP_* variables.
	Endpoint    string
	ServiceName string
}

// DragTracer implements port.DragTracer on top of an OpenTelemetry tracer.
type DragTracer struct {
	provider *sdktrace.TracerProvider // nil when the provider is owned elsewhere
	tracer   oteltrace.Tracer
}

var _ port.DragTracer = (*DragTracer)(nil)

// NewOTLPDragTracer creates a tracer exporting spans over OTLP/HTTP in batches.
func NewOTLPDragTracer(ctx context.Context, cfg Config) (*DragTracer, error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if cfg.Endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "dockyard"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return &DragTracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}, nil
}

// NewDragTracer creates a tracer from an existing provider.
func NewDragTracer(tp oteltrace.TracerProvider) *DragTracer {
	return &DragTracer{tracer: tp.Tracer(instrumentationName)}
}

// NewNoopDragTracer creates a tracer that records nothing.
func NewNoopDragTracer() *DragTracer {
	return NewDragTracer(noop.NewTracerProvider())
}

// StartDrag implements port.DragTracer.
func (t *DragTracer) StartDrag(ctx context.Context, panelID entity.PanelID, origin entity.Point) (context.Context, port.DragSpan) {
	ctx, span := t.tracer.Start(ctx, dragSpanName,
		oteltrace.WithAttributes(
			attribute.String("dockyard.panel.id", string(panelID)),
			attribute.Float64("dockyard.drag.origin.x", origin.X),
			attribute.Float64("dockyard.drag.origin.y", origin.Y),
		),
	)
	return ctx, &dragSpan{span: span}
}

// Shutdown flushes and closes the exporter.
func (t *DragTracer) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

type dragSpan struct {
	span  oteltrace.Span
	moves int
	last  entity.Point
}

func (s *dragSpan) Context(ctx context.Context) context.Context {
	return oteltrace.ContextWithSpan(ctx, s.span)
}

func (s *dragSpan) AddMove(pos entity.Point) {
	s.moves++
	s.last = pos
}

func (s *dragSpan) End(outcome string, err error) {
	s.span.SetAttributes(
		attribute.String("dockyard.drag.outcome", outcome),
		attribute.Int("dockyard.drag.moves", s.moves),
		attribute.Float64("dockyard.drag.last.x", s.last.X),
		attribute.Float64("dockyard.drag.last.y", s.last.Y),
	)
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}
