package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mrops-br/produto-api/internal/infrastructure/config"
)

func testOTLPConfig() *config.OTLPConfig {
	return &config.OTLPConfig{ServiceName: "produtos-api-test", Environment: "test"}
}

func TestLogger_InjectsTraceContextAndRoute(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, testOTLPConfig(), slog.LevelInfo)

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	ctx = WithHTTPRoute(ctx, "/produtos/{id}")

	logger.InfoContext(ctx, "hello", slog.Int("produto_id", 1))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, span.SpanContext().TraceID().String(), record["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), record["span_id"])
	assert.Equal(t, "/produtos/{id}", record["http.route"])
	assert.Equal(t, "produtos-api-test", record["service.name"])
	assert.EqualValues(t, 1, record["produto_id"])
}

func TestLogger_WithoutSpan(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, testOTLPConfig(), slog.LevelInfo).WithGroup("req")

	logger.InfoContext(context.Background(), "plain")
	logger.DebugContext(context.Background(), "filtered")

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.NotContains(t, record, "trace_id")
	assert.Equal(t, "plain", record["msg"])
}

func TestHTTPRouteFromContext_Empty(t *testing.T) {
	assert.Empty(t, HTTPRouteFromContext(context.Background()))
}

func TestNoOpTelemetry_ServesPrometheusMetrics(t *testing.T) {
	tel := NewNoOpTelemetry(testOTLPConfig(), slog.LevelError)
	t.Cleanup(func() { _ = tel.Shutdown(context.Background()) })

	counter, err := tel.MeterProvider.Meter("test").Int64Counter("produtos.operations")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	rec := httptest.NewRecorder()
	tel.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "produtos_operations")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNoOpTelemetry_IndependentRegistries(t *testing.T) {
	first := NewNoOpTelemetry(testOTLPConfig(), slog.LevelError)
	second := NewNoOpTelemetry(testOTLPConfig(), slog.LevelError)
	t.Cleanup(func() {
		_ = first.Shutdown(context.Background())
		_ = second.Shutdown(context.Background())
	})

	assert.NotSame(t, first.registry, second.registry)
}
