package ggapp

import (
	"image"
	"testing"
)

func TestDefaultConfiguration(t *testing.T) {
	t.Setenv(envBackend, "")
	cfg := DefaultConfiguration()
	if _, ok := cfg.ForcedBackend(); ok {
		t.Error("ForcedBackend() set on default configuration")
	}
	if cfg.ProbingDisabled() {
		t.Error("ProbingDisabled() = true on default configuration")
	}
	if w, h := cfg.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %dx%d, want 800x600", w, h)
	}
}

func TestConfigurationEnvOverride(t *testing.T) {
	tests := []struct {
		env      string
		want     BackendKind
		isForced bool
	}{
		{"software", Software, true},
		{"accelerated", Accelerated, true},
		{"gogpu", Accelerated, true},
		{"SOFTWARE", Software, true},
		{"", Software, false},
		{"metal", Software, false},
	}
	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			t.Setenv(envBackend, tt.env)
			cfg := DefaultConfiguration()
			kind, ok := cfg.ForcedBackend()
			if ok != tt.isForced {
				t.Fatalf("ForcedBackend() forced = %v, want %v", ok, tt.isForced)
			}
			if ok && kind != tt.want {
				t.Errorf("ForcedBackend() = %v, want %v", kind, tt.want)
			}
		})
	}
}

func TestWithForcedBackendBeatsEnv(t *testing.T) {
	t.Setenv(envBackend, "software")
	cfg := DefaultConfiguration().WithForcedBackend(Accelerated)
	kind, ok := cfg.ForcedBackend()
	if !ok || kind != Accelerated {
		t.Errorf("ForcedBackend() = %v, %v; want Accelerated, true", kind, ok)
	}
}

func TestWithAutoSelectClearsEnvForce(t *testing.T) {
	t.Setenv(envBackend, "accelerated")
	cfg := DefaultConfiguration().WithAutoSelect()
	if _, ok := cfg.ForcedBackend(); ok {
		t.Error("ForcedBackend() still set after WithAutoSelect()")
	}
}

func TestConfigurationBuilderReturnsCopies(t *testing.T) {
	t.Setenv(envBackend, "")
	base := DefaultConfiguration()
	forced := base.WithForcedBackend(Software).WithoutProbing().WithSize(10, 10)

	if _, ok := base.ForcedBackend(); ok {
		t.Error("base configuration mutated by WithForcedBackend on a copy")
	}
	if base.ProbingDisabled() {
		t.Error("base configuration mutated by WithoutProbing on a copy")
	}
	if w, _ := base.Size(); w != 800 {
		t.Error("base configuration mutated by WithSize on a copy")
	}
	if !forced.ProbingDisabled() {
		t.Error("derived configuration lost WithoutProbing")
	}
}

func TestWithSizeRejectsNonPositive(t *testing.T) {
	cfg := DefaultConfiguration().WithSize(0, -5)
	if w, h := cfg.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %dx%d after invalid WithSize, want defaults kept", w, h)
	}
}

func TestWithTargetFPSRejectsNonPositive(t *testing.T) {
	cfg := DefaultConfiguration().WithTargetFPS(-1)
	if cfg.targetFPS != 60 {
		t.Errorf("targetFPS = %d after invalid WithTargetFPS, want 60", cfg.targetFPS)
	}
}

func TestWithTitle(t *testing.T) {
	cfg := DefaultConfiguration()
	if cfg.Title() != "" {
		t.Errorf("Title() = %q on default, want empty", cfg.Title())
	}
	if got := cfg.WithTitle("demo").Title(); got != "demo" {
		t.Errorf("Title() = %q, want %q", got, "demo")
	}
}

func TestWithFrameHandler(t *testing.T) {
	cfg := DefaultConfiguration().WithFrameHandler(func(image.Image) error { return nil })
	if cfg.onFrame == nil {
		t.Error("onFrame nil after WithFrameHandler")
	}
}
