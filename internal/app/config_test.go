package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	cfg.Bind(fs)
	return cfg, cfg.Parse(fs, args)
}

func TestDefaultConfigMatchesClassicWindow(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Width*cfg.CellSize != 900 || cfg.Height*cfg.CellSize != 600 {
		t.Fatalf("window %dx%d, expected 900x600", cfg.Width*cfg.CellSize, cfg.Height*cfg.CellSize)
	}
	if cfg.Density != 0.1 {
		t.Fatalf("density=%v, expected 0.1", cfg.Density)
	}
}

func TestConfigFileThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "life.json")
	if err := os.WriteFile(path, []byte(`{"width": 40, "height": 30, "seed": 5, "density": 0.25}`), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := parse(t, "-config", path, "-seed", "9")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 30 || cfg.Density != 0.25 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Seed != 9 {
		t.Fatalf("flag should override file seed, got %d", cfg.Seed)
	}
}

func TestConfigFileErrors(t *testing.T) {
	if _, err := parse(t, "-config", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file should fail")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := parse(t, "-config", path)
	if err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"zero cell", []string{"-cell", "0"}},
		{"negative step rate", []string{"-step-rate", "-1"}},
		{"density above one", []string{"-density", "1.5"}},
		{"no playable cells", []string{"-width", "15"}},
		{"menu wider than grid", []string{"-width", "12"}},
		{"single row", []string{"-height", "1"}},
		{"menu past right wall", []string{"-menu-cols", "200"}},
		{"zero tps", []string{"-tps", "0"}},
	}
	for _, c := range cases {
		if _, err := parse(t, c.args...); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}
}

func TestConfigNewSession(t *testing.T) {
	cfg, err := parse(t, "-seed", "3", "-density", "0.5", "-step-rate", "10")
	if err != nil {
		t.Fatal(err)
	}
	s := cfg.NewSession()
	if s.Universe().Density() != 0.5 {
		t.Fatalf("density=%v, expected 0.5", s.Universe().Density())
	}
	if s.pace == nil {
		t.Fatal("a step rate below tps should install a pace")
	}
	if cfg.EffectiveSeed() != 3 {
		t.Fatalf("seed=%d, expected 3", cfg.EffectiveSeed())
	}
}
