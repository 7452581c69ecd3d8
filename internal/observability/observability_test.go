package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
		"trace":   zerolog.TraceLevel,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, ok)
		}
	}
	for _, in := range []string{"", "loud"} {
		if _, ok := ParseLevel(in); ok {
			t.Fatalf("ParseLevel(%q) accepted", in)
		}
	}
}

func TestDefaultLogConfigReadsEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogNoColor, "true")
	cfg := DefaultLogConfig()
	if cfg.Level != zerolog.ErrorLevel || !cfg.NoColor {
		t.Fatalf("config %+v", cfg)
	}
	t.Setenv(EnvLogNoColor, "maybe")
	if DefaultLogConfig().NoColor {
		t.Fatal("invalid bool enabled NoColor")
	}
}

func TestInitLoggerWritesAppField(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLoggerWith("lifegrid-test", LogConfig{Level: zerolog.InfoLevel, NoColor: true, Out: &buf})
	logger.Debug().Msg("hidden")
	logger.Info().Int("alive", 5).Msg("stepped")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, "stepped") || !strings.Contains(out, "app=lifegrid-test") || !strings.Contains(out, "alive=5") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestRecordStep(t *testing.T) {
	before := testutil.ToFloat64(generations.WithLabelValues("toroidal"))
	RecordStep("toroidal", time.Millisecond)
	RecordStep("toroidal", time.Millisecond)
	if got := testutil.ToFloat64(generations.WithLabelValues("toroidal")); got != before+2 {
		t.Fatalf("generations counter %v, expected %v", got, before+2)
	}
	RecordAlive(17)
	if got := testutil.ToFloat64(aliveCells); got != 17 {
		t.Fatalf("alive gauge %v", got)
	}
}
