package tracing_test

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/tracing"
)

func newRecordingTracer(t *testing.T) (*tracing.DragTracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return tracing.NewDragTracer(provider), recorder
}

func attrMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, kv := range attrs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestDragTracer_RecordsGesture(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	_, span := tracer.StartDrag(context.Background(), "p1", entity.Point{X: 10, Y: 20})
	span.AddMove(entity.Point{X: 15, Y: 25})
	span.AddMove(entity.Point{X: 30, Y: 40})
	span.End("moved", nil)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "dock.drag", ended[0].Name())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "p1", attrs["dockyard.panel.id"].AsString())
	assert.Equal(t, 10.0, attrs["dockyard.drag.origin.x"].AsFloat64())
	assert.Equal(t, "moved", attrs["dockyard.drag.outcome"].AsString())
	assert.Equal(t, int64(2), attrs["dockyard.drag.moves"].AsInt64())
	assert.Equal(t, 40.0, attrs["dockyard.drag.last.y"].AsFloat64())
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
}

func TestDragTracer_ContextParentsLandingSpans(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := tracer.StartDrag(context.Background(), "p1", entity.Point{})
	ctx := span.Context(context.Background())
	_, child := provider.Tracer("test").Start(ctx, "dock.land")
	child.End()
	span.End("moved", nil)

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	land, drag := ended[0], ended[1]
	require.Equal(t, "dock.land", land.Name())
	require.Equal(t, "dock.drag", drag.Name())
	assert.Equal(t, drag.SpanContext().TraceID(), land.SpanContext().TraceID())
	assert.Equal(t, drag.SpanContext().SpanID(), land.Parent().SpanID())
}

func TestDragTracer_RecordsError(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	_, span := tracer.StartDrag(context.Background(), "p1", entity.Point{})
	span.End("none", errors.New("no display"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "no display", ended[0].Status().Description)
	require.NotEmpty(t, ended[0].Events())
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestDragTracer_Noop(t *testing.T) {
	tracer := tracing.NewNoopDragTracer()

	ctx, span := tracer.StartDrag(context.Background(), "p1", entity.Point{})
	require.NotNil(t, ctx)
	require.NotNil(t, span.Context(ctx))
	span.AddMove(entity.Point{X: 1})
	span.End("same_area", nil)

	assert.NoError(t, tracer.Shutdown(context.Background()))
}
