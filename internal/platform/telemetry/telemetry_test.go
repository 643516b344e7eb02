package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/activity-roster/internal/platform/config"
	"github.com/jsamuelsen11/activity-roster/internal/platform/telemetry"
)

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := telemetry.Setup(context.Background(), config.TelemetryConfig{Enabled: false, Exporter: "bogus"})
	if err != nil {
		t.Fatalf("Setup(disabled) error = %v", err)
	}
	if p.Tracer != nil || p.Meter != nil || p.Metrics != nil {
		t.Errorf("Setup(disabled) = %+v, want empty providers", p)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown on empty providers = %v, want nil", err)
	}
}

func TestSetup_Stdout(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	p, err := telemetry.Setup(ctx, config.TelemetryConfig{
		Enabled:     true,
		Exporter:    telemetry.ExporterStdout,
		ServiceName: "roster-test",
	}, telemetry.WithWriter(&out))
	if err != nil {
		t.Fatalf("Setup(stdout) error = %v", err)
	}

	if p.Metrics == nil || p.Metrics.RosterSignupTotal == nil {
		t.Fatal("Setup(stdout) did not register roster metrics")
	}
	if otel.GetTracerProvider() != p.Tracer {
		t.Error("global tracer provider not installed")
	}
	if len(otel.GetTextMapPropagator().Fields()) < 2 {
		t.Errorf("propagator fields = %v, want traceparent and baggage", otel.GetTextMapPropagator().Fields())
	}

	_, span := p.Tracer.Tracer("test").Start(ctx, "signup")
	span.End()

	if err := p.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown error = %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte(`"Name": "signup"`)) {
		t.Errorf("stdout exporter output missing span:\n%s", out.String())
	}
}

func TestSetup_OTLP(t *testing.T) {
	ctx := context.Background()

	for _, endpoint := range []string{"http://localhost:4318", "https://collector.example:4318", "localhost:4318"} {
		p, err := telemetry.Setup(ctx, config.TelemetryConfig{
			Enabled:     true,
			Exporter:    telemetry.ExporterOTLP,
			Endpoint:    endpoint,
			ServiceName: "roster-test",
		})
		if err != nil {
			t.Fatalf("Setup(otlp, %q) error = %v", endpoint, err)
		}
		// No collector runs in unit tests, so the final flush may fail.
		_ = p.Shutdown(ctx)
	}
}

func TestSetup_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.TelemetryConfig
	}{
		{name: "unsupported exporter", cfg: config.TelemetryConfig{Enabled: true, Exporter: "zipkin"}},
		{name: "otlp without endpoint", cfg: config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := telemetry.Setup(context.Background(), tt.cfg); err == nil {
				t.Fatal("Setup() error = nil, want error")
			}
		})
	}
}

func TestNewMetrics_RecordsRosterCounters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := telemetry.NewMetrics(mp, "roster-test")
	if err != nil {
		t.Fatalf("NewMetrics error = %v", err)
	}

	attrs := metric.WithAttributes(
		telemetry.AttrActivity.String("Chess Club"),
		telemetry.AttrResult.String("success"),
	)
	m.RosterSignupTotal.Add(ctx, 2, attrs)
	m.RosterUnregisterTotal.Add(ctx, 1, attrs)
	m.ServerRequestDuration.Record(ctx, 0.25)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect error = %v", err)
	}

	sums := map[string]int64{}
	var names []string
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			names = append(names, md.Name)
			if sum, ok := md.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					if v, ok := dp.Attributes.Value(attribute.Key("roster.activity")); ok && v.AsString() == "Chess Club" {
						sums[md.Name] += dp.Value
					}
				}
			}
		}
	}

	if sums["roster.signup.total"] != 2 {
		t.Errorf("roster.signup.total = %d, want 2 (collected %v)", sums["roster.signup.total"], names)
	}
	if sums["roster.unregister.total"] != 1 {
		t.Errorf("roster.unregister.total = %d, want 1", sums["roster.unregister.total"])
	}
}

func TestProviders_ShutdownPartial(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	p := &telemetry.Providers{Meter: sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))}

	if err := p.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown with meter only = %v, want nil", err)
	}
}
