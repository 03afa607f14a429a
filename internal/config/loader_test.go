package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	cfg, err := Parse(defaultPongYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded YAML and DefaultPongConfig() disagree:\nyaml=%+v\ngo  =%+v", cfg, DefaultPongConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := []byte(`
speed: fast
paddles:
  right:
    control: random
terminal:
  hold_window: 200ms
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Speed != SpeedFast {
		t.Errorf("Speed = %q, expected fast", cfg.Speed)
	}
	if cfg.Paddles.Right.Control != ControlRandom {
		t.Errorf("right control = %q, expected random", cfg.Paddles.Right.Control)
	}
	if cfg.Paddles.Right.Up != "up" {
		t.Errorf("right up key should keep its default, got %q", cfg.Paddles.Right.Up)
	}
	if cfg.Terminal.HoldWindow != 200*time.Millisecond {
		t.Errorf("HoldWindow = %v, expected 200ms", cfg.Terminal.HoldWindow)
	}
	if cfg.Arena != DefaultPongConfig().Arena {
		t.Errorf("arena should keep defaults, got %+v", cfg.Arena)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [not, a, mapping"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("arena:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidArena) {
		t.Errorf("Load() of invalid arena = %v, expected ErrInvalidArena", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "pong.yaml"), []byte("speed: slow\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Speed != SpeedSlow {
		t.Errorf("local config should be used, speed = %q", cfg.Speed)
	}

	// User config wins over local.
	if err := os.MkdirAll(filepath.Join(home, ".pong"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".pong", "config.yaml"), []byte("speed: fast\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Speed != SpeedFast {
		t.Errorf("user config should win, speed = %q", cfg.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
		want   error
	}{
		{"defaults", func(*PongConfig) {}, nil},
		{"zero width", func(c *PongConfig) { c.Arena.Width = 0 }, ErrInvalidArena},
		{"negative wall", func(c *PongConfig) { c.Arena.WallHeight = -1 }, ErrInvalidArena},
		{"paddle too tall", func(c *PongConfig) { c.Arena.PaddleHeight = 551 }, ErrInvalidArena},
		{"paddle exactly fits", func(c *PongConfig) { c.Arena.PaddleHeight = 550 }, nil},
		{"huge ball", func(c *PongConfig) { c.Arena.BallRadius = 300 }, ErrInvalidArena},
		{"no room between paddles", func(c *PongConfig) { c.Arena.Padding = 400 }, ErrInvalidArena},
		{"negative speed", func(c *PongConfig) { c.Arena.BallSpeed = -5 }, ErrInvalidArena},
		{"unknown preset", func(c *PongConfig) { c.Speed = "ludicrous" }, ErrUnknownPreset},
		{"empty preset", func(c *PongConfig) { c.Speed = "" }, nil},
		{"unknown control", func(c *PongConfig) { c.Paddles.Left.Control = "ai" }, ErrUnknownControl},
		{"human without keys", func(c *PongConfig) { c.Paddles.Right.Down = "" }, ErrMissingKey},
		{"random without keys", func(c *PongConfig) {
			c.Paddles.Right = PaddleConfig{Control: ControlRandom}
		}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestMarshalIsLoadable(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Speed = SpeedFast
	cfg.Paddles.Left.Control = ControlRandom

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config:\nbefore=%+v\nafter =%+v", cfg, back)
	}
}

func TestPresetsAndControls(t *testing.T) {
	presets := []struct {
		preset SpeedPreset
		want   float64
	}{
		{SpeedSlow, 0.7},
		{SpeedNormal, 1.0},
		{"", 1.0},
		{SpeedFast, 1.4},
	}
	for _, tc := range presets {
		got, err := MultiplierForPreset(tc.preset)
		if err != nil || got != tc.want {
			t.Errorf("MultiplierForPreset(%q) = %v, %v; expected %v", tc.preset, got, err, tc.want)
		}
	}

	if c, err := ParseControl("random"); err != nil || c != ControlRandom {
		t.Errorf("ParseControl(random) = %q, %v", c, err)
	}
	if _, err := ParseControl("cpu"); !errors.Is(err, ErrUnknownControl) {
		t.Errorf("ParseControl(cpu) = %v, expected ErrUnknownControl", err)
	}
}
