package results

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forest-ca/internal/forest"
)

func TestAppendAccumulatesWithoutHeader(t *testing.T) {
	a, err := NewAppender(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("NewAppender: %v", err)
	}
	cfg := forest.DefaultConfig()
	cfg.Topology = forest.VonNeumann4
	cfg.Rows, cfg.Cols = 50, 60

	if err := a.Append(cfg, Record{Density: 10, BurntFraction: 0.25, MeanSteps: 3}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := a.Append(cfg, Record{Density: 11, BurntFraction: 0.5, MeanSteps: 4.5}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	path := a.Path(cfg)
	if filepath.Base(path) != "VonNeumann_50x60.csv" {
		t.Fatalf("unexpected file name %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", data)
	}
	if lines[0] != "10;0.25;3" || lines[1] != "11;0.5;4.5" {
		t.Fatalf("unexpected rows %q", lines)
	}

	recs, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(recs) != 2 || recs[1].Density != 11 || recs[1].MeanSteps != 4.5 {
		t.Fatalf("unexpected records %+v", recs)
	}
}

func TestLatestSupersedesEarlierRuns(t *testing.T) {
	recs := Latest([]Record{
		{Density: 30, BurntFraction: 0.1},
		{Density: 10, BurntFraction: 0.01},
		{Density: 30, BurntFraction: 0.2},
		{Density: 20, BurntFraction: 0.05},
	})
	if len(recs) != 3 {
		t.Fatalf("expected 3 levels, got %+v", recs)
	}
	if recs[0].Density != 10 || recs[1].Density != 20 || recs[2].Density != 30 {
		t.Fatalf("levels out of order: %+v", recs)
	}
	if recs[2].BurntFraction != 0.2 {
		t.Fatalf("density 30 kept %v, want the later row", recs[2].BurntFraction)
	}
}

func TestFileNamePerTopology(t *testing.T) {
	if got := FileName(forest.Moore8, 101, 101); got != "Moore_101x101.csv" {
		t.Fatalf("FileName = %q", got)
	}
}

func TestPlotCurveWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	recs := []Record{
		{Density: 20, BurntFraction: 0.01, MeanSteps: 3},
		{Density: 50, BurntFraction: 0.2, MeanSteps: 40},
		{Density: 80, BurntFraction: 0.98, MeanSteps: 70},
	}
	if err := PlotCurve(path, "VonNeumann 50x50", recs); err != nil {
		t.Fatalf("PlotCurve: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decoding png: %v", err)
	}
	if cfg.Width != 900 || cfg.Height != 500 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}

	if err := PlotCurve(path, "single", recs[:1]); err == nil {
		t.Fatal("expected error for a single level")
	}
}
