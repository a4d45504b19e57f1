package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"forest-ca/internal/forest"
)

func TestDefaultsMatchBatchVariant(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fc, err := cfg.ForestConfig()
	if err != nil {
		t.Fatalf("ForestConfig: %v", err)
	}
	if fc.Topology != forest.VonNeumann4 || fc.Burnout != forest.BurnoutAsh || fc.Init != forest.InitDensity {
		t.Fatalf("unexpected defaults: %+v", fc)
	}
	if !fc.Terminates() {
		t.Fatal("default experiment must terminate")
	}
	opts := cfg.SweepOptions()
	if opts.From != 1 || opts.To != 99 || opts.Trials != 100 || opts.Workers < 1 {
		t.Fatalf("unexpected sweep defaults: %+v", opts)
	}
}

func TestLoadOverlaysUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exp.yaml")
	data := []byte("forest:\n  topology: hex\n  rows: 20\nsweep:\n  trials: 7\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fc, _ := cfg.ForestConfig()
	if fc.Topology != forest.Hex6 || fc.Rows != 20 || fc.Cols != 101 {
		t.Fatalf("overlay not applied: %+v", fc)
	}
	if cfg.Sweep.Trials != 7 || cfg.Sweep.To != 99 {
		t.Fatalf("sweep overlay wrong: %+v", cfg.Sweep)
	}

	out := filepath.Join(dir, "snapshot.yaml")
	if err := cfg.WriteYAML(out); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	again, err := Load(out)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Forest != cfg.Forest || again.Sweep != cfg.Sweep {
		t.Fatalf("snapshot did not round trip")
	}
}

func TestLoadRejectsBadForest(t *testing.T) {
	cases := map[string]string{
		"topology": "forest:\n  topology: penrose\n",
		"density":  "forest:\n  density: 140\n",
		"burnout":  "forest:\n  burnout: charcoal\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, forest.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}
}
