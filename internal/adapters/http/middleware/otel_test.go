package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/draftdesk/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/draftdesk/internal/platform/telemetry"
)

// These tests swap the global TracerProvider and must not run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

// onlySpan fails unless exactly one span was exported.
func onlySpan(t *testing.T, exporter *tracetest.InMemoryExporter) tracetest.SpanStub {
	t.Helper()
	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	return spans[0]
}

func spanAttrs(s tracetest.SpanStub) map[string]any {
	attrs := make(map[string]any, len(s.Attributes))
	for _, a := range s.Attributes {
		attrs[string(a.Key)] = a.Value.AsInterface()
	}
	return attrs
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		status     int
		wantName   string
		wantStatus codes.Code
		wantAttrs  map[string]any
	}{
		{
			name:       "unrouted path keeps raw path",
			method:     http.MethodGet,
			target:     "/healthz",
			status:     http.StatusOK,
			wantName:   "HTTP GET /healthz",
			wantStatus: codes.Unset,
			wantAttrs:  map[string]any{"http.method": "GET", "http.status_code": int64(200)},
		},
		{
			name:       "client error is not a span error",
			method:     http.MethodPost,
			target:     "/nowhere",
			status:     http.StatusNotFound,
			wantName:   "HTTP POST /nowhere",
			wantStatus: codes.Unset,
			wantAttrs:  map[string]any{"http.method": "POST", "http.status_code": int64(404)},
		},
		{
			name:       "server error marks span",
			method:     http.MethodGet,
			target:     "/boom",
			status:     http.StatusBadGateway,
			wantName:   "HTTP GET /boom",
			wantStatus: codes.Error,
			wantAttrs:  map[string]any{"http.status_code": int64(502)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := installTracer(t)

			h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.target, http.NoBody))

			span := onlySpan(t, exporter)
			if span.Name != tt.wantName {
				t.Errorf("span name = %q, want %q", span.Name, tt.wantName)
			}
			if span.Status.Code != tt.wantStatus {
				t.Errorf("span status = %v, want %v", span.Status.Code, tt.wantStatus)
			}
			got := spanAttrs(span)
			for k, want := range tt.wantAttrs {
				if got[k] != want {
					t.Errorf("attr %s = %v, want %v", k, got[k], want)
				}
			}
		})
	}
}

func TestOpenTelemetry_RouteAndDraftID(t *testing.T) {
	exporter := installTracer(t)

	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(nil))
	r.Post("/api/v1/drafts/{draftId}/submit", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/drafts/d-42/submit", http.NoBody))

	const route = "/api/v1/drafts/{draftId}/submit"
	span := onlySpan(t, exporter)
	if want := "HTTP POST " + route; span.Name != want {
		t.Errorf("span name = %q, want %q", span.Name, want)
	}
	attrs := spanAttrs(span)
	if attrs["http.route"] != route {
		t.Errorf("http.route = %v, want %q", attrs["http.route"], route)
	}
	if attrs["draft.id"] != "d-42" {
		t.Errorf("draft.id = %v, want d-42", attrs["draft.id"])
	}
}

func TestOpenTelemetry_ContinuesIncomingTrace(t *testing.T) {
	exporter := installTracer(t)

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"
	req := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
	req.Header.Set("Traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)

	span := onlySpan(t, exporter)
	if got := span.SpanContext.TraceID().String(); got != traceID {
		t.Errorf("trace id = %s, want %s", got, traceID)
	}
}

func TestOpenTelemetry_RecordsServerMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	metrics, err := telemetry.NewMetrics(mp, "draftdesk-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	h := middleware.OpenTelemetry(metrics)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	for range 3 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", http.NoBody))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(t.Context(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value(telemetry.AttrResult); ok && v.AsString() == "error" {
					total += dp.Value
				}
			}
		}
	}
	if total != 3 {
		t.Errorf("error request count = %d, want 3", total)
	}
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	h := middleware.OpenTelemetry(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
