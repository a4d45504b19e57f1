package record

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"forest-ca/internal/forest"
)

func TestRecordStopsWhenQuiet(t *testing.T) {
	cfg := forest.DefaultConfig()
	cfg.Rows, cfg.Cols = 9, 9
	cfg.Topology = forest.VonNeumann4
	cfg.Density = 100
	sim, err := forest.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "burn.avi")
	opts := DefaultOptions()
	opts.Scale = 2
	opts.StopWhenQuiet = true
	frames, err := Record(context.Background(), sim, path, opts)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	// Centre to corner is 8 steps on a 9x9 von Neumann grid, plus burnout.
	if frames != 10 {
		t.Fatalf("wrote %d frames, want 10", frames)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "AVI " {
		t.Fatalf("output is not an AVI file")
	}
}

func TestRecordHonoursFrameLimit(t *testing.T) {
	cfg, _ := forest.LookupVariant("forest")
	cfg.Rows, cfg.Cols = 16, 16
	sim, err := forest.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.Frames = 5
	opts.StepsPerFrame = 3
	frames, err := Record(context.Background(), sim, filepath.Join(t.TempDir(), "grow.avi"), opts)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if frames != 5 || sim.Tick() != 15 {
		t.Fatalf("frames=%d tick=%d", frames, sim.Tick())
	}
}
