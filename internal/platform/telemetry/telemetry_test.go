package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/draftdesk/internal/platform/telemetry"
)

// InitTracer and InitMeter replace global providers, so these tests do not
// run in parallel.

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "zipkin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			tp, err := telemetry.InitTracer(ctx, "draftdesk-test", tt.exporter, tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitTracer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			// No collector runs under test, so an OTLP flush may fail.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			if fields := otel.GetTextMapPropagator().Fields(); len(fields) < 2 {
				t.Errorf("propagator fields = %v, want traceparent and baggage", fields)
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp over https", exporter: telemetry.ExporterOTLP, endpoint: "https://collector.internal:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unknown exporter", exporter: "statsd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			mp, err := telemetry.InitMeter(ctx, "draftdesk-test", tt.exporter, tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InitMeter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				t.Cleanup(func() { _ = mp.Shutdown(ctx) })
			}
		})
	}
}

func TestNewMetrics_RecordsDraftOutcomes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	metrics, err := telemetry.NewMetrics(mp, "draftdesk-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	metrics.DraftSubmissionTotal.Add(ctx, 1, telemetry.ResultAttrs("users", "succeeded"))
	metrics.DraftSubmissionTotal.Add(ctx, 1, telemetry.ResultAttrs("users", "succeeded"))
	metrics.DraftSubmissionTotal.Add(ctx, 1, telemetry.ResultAttrs("users", "failed"))
	metrics.DraftSessionsActive.Add(ctx, 2)
	metrics.DraftSessionsActive.Add(ctx, -1)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	submissions := findSum(t, rm, "draft.submission.total")
	want := map[string]int64{"succeeded": 2, "failed": 1}
	if len(submissions.DataPoints) != len(want) {
		t.Fatalf("submission data points = %d, want %d", len(submissions.DataPoints), len(want))
	}
	for _, dp := range submissions.DataPoints {
		result, _ := dp.Attributes.Value(telemetry.AttrResult)
		resource, _ := dp.Attributes.Value(telemetry.AttrResource)
		if resource.AsString() != "users" {
			t.Errorf("resource attr = %q, want users", resource.AsString())
		}
		if dp.Value != want[result.AsString()] {
			t.Errorf("%s = %d, want %d", result.AsString(), dp.Value, want[result.AsString()])
		}
	}

	sessions := findSum(t, rm, "draft.sessions.active")
	if len(sessions.DataPoints) != 1 || sessions.DataPoints[0].Value != 1 {
		t.Errorf("draft.sessions.active = %+v, want a single point of 1", sessions.DataPoints)
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "draftdesk-test")
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}

	metrics.DraftSubmissionTotal.Add(context.Background(), 1, telemetry.ResultAttrs("users", "rejected"))
	metrics.ServerRequestDuration.Record(context.Background(), 0.01)
}

func findSum(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("%s data = %T, want Sum[int64]", name, m.Data)
			}
			return sum
		}
	}
	t.Fatalf("metric %s not collected", name)
	return metricdata.Sum[int64]{}
}
