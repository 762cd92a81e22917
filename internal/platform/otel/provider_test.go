package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/fairdice/internal/platform/otel"
)

func TestConfigActive(t *testing.T) {
	tcs := []struct {
		name string
		cfg  otel.Config
		want bool
	}{
		{"empty endpoint", otel.Config{}, false},
		{"endpoint only", otel.Config{Endpoint: "http://localhost:4318"}, true},
		{"explicitly enabled", otel.Config{Endpoint: "http://localhost:4318", Enabled: "true"}, true},
		{"explicitly disabled", otel.Config{Endpoint: "http://localhost:4318", Enabled: " FALSE "}, false},
	}
	for _, tc := range tcs {
		if got := tc.cfg.Active(); got != tc.want {
			t.Errorf("%s: Active() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("FAIRDICE_OTEL_ENDPOINT", "")
	t.Setenv("FAIRDICE_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("FAIRDICE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("FAIRDICE_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupWithConfig_ShutdownFlushesCleanly(t *testing.T) {
	// A non-routable address, so nothing is exported.
	cfg := otel.Config{Endpoint: "http://192.0.2.1:4318"}

	shutdown, err := otel.SetupWithConfig(context.Background(), "flush-test", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv("FAIRDICE_OTEL_ENDPOINT", "")

	shutdown, err := otel.Setup(context.Background(), "noop-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}
