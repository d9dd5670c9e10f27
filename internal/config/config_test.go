package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_FileValues(t *testing.T) {
	p := writeConfig(t, `
port: "9090"
log:
  level: debug
db:
  path: box.db
box:
  min_c: 25
  max_c: 50
actuator:
  duty_cycle_default: 50
pipeline:
  tick: 250ms
  source: none
  unit: F
  drain_on_stop: true
nats:
  url: nats://127.0.0.1:4222
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Log.Level != "debug" || cfg.DB.Path != "box.db" {
		t.Fatalf("unexpected top-level values: %+v", cfg)
	}
	if cfg.Box.MinC != 25 || cfg.Box.MaxC != 50 {
		t.Fatalf("unexpected box: %+v", cfg.Box)
	}
	if cfg.Actuator.DutyCycleDefault != 50 || cfg.Actuator.FrequencyDefault != 100 {
		t.Fatalf("unexpected actuator: %+v", cfg.Actuator)
	}
	if cfg.Pipeline.Tick != 250*time.Millisecond || cfg.Pipeline.Source != SourceNone || cfg.Pipeline.Unit != "F" || !cfg.Pipeline.DrainOnStop {
		t.Fatalf("unexpected pipeline: %+v", cfg.Pipeline)
	}
	if cfg.NATS.URL != "nats://127.0.0.1:4222" || cfg.NATS.Subject != "isobox.events" {
		t.Fatalf("unexpected nats: %+v", cfg.NATS)
	}
}

func TestLoad_Defaults(t *testing.T) {
	p := writeConfig(t, "port: \"8081\"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pipeline.Tick != time.Second || cfg.Pipeline.Source != SourceSim {
		t.Fatalf("pipeline defaults not applied: %+v", cfg.Pipeline)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("token ttl default = %v", cfg.Auth.TokenTTL)
	}
	if cfg.Box.MinC != 0 || cfg.Box.MaxC != 0 {
		t.Fatalf("box should be unset by default: %+v", cfg.Box)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	p := writeConfig(t, "port: \"8081\"\n")
	t.Setenv("ISOBOX_PORT", "7070")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("env override ignored, port=%q", cfg.Port)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"tick too small", "pipeline:\n  tick: 1ms\n", "pipeline.tick"},
		{"unknown source", "pipeline:\n  source: serial\n", "pipeline.source"},
		{"unknown unit", "pipeline:\n  unit: R\n", "pipeline.unit"},
		{"inverted box", "box:\n  min_c: 50\n  max_c: 25\n", "box.max_c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoad_UnitLabelsMatchPipeline(t *testing.T) {
	for _, unit := range []string{"kelvin", "°F", "degC", "c"} {
		t.Run(unit, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, "pipeline:\n  unit: \""+unit+"\"\n"))
			if err != nil {
				t.Fatalf("unit %q rejected: %v", unit, err)
			}
			if cfg.Pipeline.Unit != unit {
				t.Fatalf("unit=%q, want %q", cfg.Pipeline.Unit, unit)
			}
		})
	}
}
