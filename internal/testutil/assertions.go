// Package testutil provides common test utilities and assertions for robotkit tests.
package testutil

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/robotkit/robotkit-sdk/domain/entities"
	"github.com/robotkit/robotkit-sdk/domain/errors"
	rklog "github.com/robotkit/robotkit-sdk/log"
)

// AssertJSONEqual compares two JSON strings for equality, ignoring formatting
func AssertJSONEqual(t *testing.T, expected, actual string, msgAndArgs ...any) {
	t.Helper()

	var expectedJSON, actualJSON any
	require.NoError(t, json.Unmarshal([]byte(expected), &expectedJSON), "expected JSON is invalid")
	require.NoError(t, json.Unmarshal([]byte(actual), &actualJSON), "actual JSON is invalid")

	assert.Equal(t, expectedJSON, actualJSON, msgAndArgs...)
}

// RequireErrorDetail asserts that err converts to an ErrorDetail of wantType
// and returns the detail.
func RequireErrorDetail(t *testing.T, err error, wantType string) *entities.ErrorDetail {
	t.Helper()
	require.Error(t, err)
	detail := errors.ToErrorDetail(err)
	require.NotNil(t, detail)
	require.Equal(t, wantType, detail.Type, "error detail of %v", err)
	return detail
}

// NewTracer returns a tracer whose spans are exported synchronously to the
// returned in-memory exporter. The provider is shut down with the test.
func NewTracer(t *testing.T) (trace.Tracer, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return provider.Tracer("test-tracer"), exporter
}

// SpanNames returns the names of the exported spans, in export order.
func SpanNames(exporter *tracetest.InMemoryExporter) []string {
	spans := exporter.GetSpans()
	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = s.Name
	}
	return names
}

// SpanAttribute returns the value of the span attribute key.
func SpanAttribute(span tracetest.SpanStub, key string) (attribute.Value, bool) {
	for _, attr := range span.Attributes {
		if string(attr.Key) == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

// NewLogger returns a logger recording every entry at level and above.
func NewLogger(level slog.Level) (*slog.Logger, *rklog.Recorder) {
	rec := rklog.NewRecorder(level)
	return slog.New(rec), rec
}
