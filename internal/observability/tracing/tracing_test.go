package tracing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/aidyn-dev/banking-notification-service/configs"
)

type mockExporter struct {
	exportErr   error
	shutdownErr error
	spans       []sdktrace.ReadOnlySpan
}

func (m *mockExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	if m.exportErr != nil {
		return m.exportErr
	}
	m.spans = append(m.spans, spans...)
	return nil
}

func (m *mockExporter) Shutdown(ctx context.Context) error {
	return m.shutdownErr
}

var _ sdktrace.SpanExporter = (*mockExporter)(nil)

func resetGlobals() {
	otel.SetTracerProvider(noop.NewTracerProvider())
	Tracer = nil
	shutdownFunc = func(ctx context.Context) error { return nil }
}

func TestInitTracer_Success(t *testing.T) {
	tests := []struct {
		name     string
		insecure bool
	}{
		{name: "insecure", insecure: true},
		{name: "secure", insecure: false},
	}

	mockExp := &mockExporter{}
	originalNewExporterFunc := newExporterFunc
	newExporterFunc = func(ctx context.Context, cfg *configs.Config) (sdktrace.SpanExporter, error) {
		return mockExp, nil
	}
	defer func() { newExporterFunc = originalNewExporterFunc }()

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetGlobals()

			cfg := &configs.Config{
				OtelServiceName: "test-service",
				OtelEndpoint:    "fake:4317",
				OtelInsecure:    tc.insecure,
			}

			shutdown, err := InitTracer(cfg)

			require.NoError(t, err)
			require.NotNil(t, shutdown)
			assert.NotNil(t, Tracer)

			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
			defer cancel()
			assert.NoError(t, shutdown(ctx))
		})
	}
}

func TestInitTracer_ExporterError(t *testing.T) {
	resetGlobals()
	expectedErr := errors.New("exporter creation failed")
	originalNewExporterFunc := newExporterFunc
	newExporterFunc = func(ctx context.Context, cfg *configs.Config) (sdktrace.SpanExporter, error) {
		return nil, expectedErr
	}
	defer func() { newExporterFunc = originalNewExporterFunc }()

	cfg := &configs.Config{OtelServiceName: "test-service", OtelEndpoint: "fake:4317"}

	shutdown, err := InitTracer(cfg)

	require.Error(t, err)
	assert.Nil(t, shutdown)
	assert.ErrorIs(t, err, expectedErr)
	assert.Nil(t, Tracer)
}

func TestGetTracer(t *testing.T) {
	resetGlobals()
	assert.Nil(t, GetTracer())

	mockExp := &mockExporter{}
	originalNewExporterFunc := newExporterFunc
	newExporterFunc = func(ctx context.Context, cfg *configs.Config) (sdktrace.SpanExporter, error) {
		return mockExp, nil
	}
	defer func() { newExporterFunc = originalNewExporterFunc }()

	cfg := &configs.Config{OtelServiceName: "get-tracer-test"}
	_, err := InitTracer(cfg)
	require.NoError(t, err)

	assert.NotNil(t, GetTracer())
	assert.Equal(t, Tracer, GetTracer())
}

func TestShutdownTracer(t *testing.T) {
	tests := []struct {
		name          string
		shutdownError error
	}{
		{name: "success", shutdownError: nil},
		{name: "failure", shutdownError: errors.New("shutdown failed")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetGlobals()
			shutdownCalled := false

			shutdownFunc = func(ctx context.Context) error {
				shutdownCalled = true
				return tc.shutdownError
			}

			ShutdownTracer(context.Background())

			assert.True(t, shutdownCalled)
		})
	}
}
