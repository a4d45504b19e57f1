// Package results persists sweep output: semicolon CSV rows appended per grid
// shape and topology, plus a rendered percolation curve.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/gocarina/gocsv"

	"forest-ca/internal/forest"
)

// Separator is the field delimiter used in result files.
const Separator = ';'

// Record is one density level as written to disk.
type Record struct {
	Density       int     `csv:"density"`
	BurntFraction float64 `csv:"burnt"`
	MeanSteps     float64 `csv:"steps"`
}

// FromResult converts an aggregated sweep level.
func FromResult(r forest.DensityResult) Record {
	return Record{Density: r.Density, BurntFraction: r.BurntFraction, MeanSteps: r.MeanSteps}
}

// FileName returns the result file name for a topology and grid shape.
func FileName(topo forest.Topology, rows, cols int) string {
	return fmt.Sprintf("%s_%dx%d.csv", topo, rows, cols)
}

// Appender appends records to per-configuration files under a directory.
// Files are opened in append mode for each call, never truncated, and carry
// no header, so repeated sweeps accumulate rows.
type Appender struct {
	dir string
}

// NewAppender creates dir if needed.
func NewAppender(dir string) (*Appender, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating results dir: %w", err)
	}
	return &Appender{dir: dir}, nil
}

// Path returns the file records for cfg are appended to.
func (a *Appender) Path(cfg forest.Config) string {
	return filepath.Join(a.dir, FileName(cfg.Topology, cfg.Rows, cfg.Cols))
}

// Append writes recs to the file for cfg.
func (a *Appender) Append(cfg forest.Config, recs ...Record) error {
	if len(recs) == 0 {
		return nil
	}
	path := a.Path(cfg)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	w.Comma = Separator
	if err := gocsv.MarshalCSVWithoutHeaders(recs, gocsv.NewSafeCSVWriter(w)); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// ReadFile loads every record from a result file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = Separator
	var recs []Record
	if err := gocsv.UnmarshalCSVWithoutHeaders(r, &recs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return recs, nil
}

// Latest keeps the last row written for each density, ordered by density.
// Appended files grow across runs, so earlier levels are superseded.
func Latest(recs []Record) []Record {
	byDensity := make(map[int]Record, len(recs))
	for _, r := range recs {
		byDensity[r.Density] = r
	}
	out := make([]Record, 0, len(byDensity))
	for _, r := range byDensity {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b Record) int { return a.Density - b.Density })
	return out
}
