package results

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PlotCurve renders burnt fraction (left axis) and mean ticks to quiescence
// (right axis) against density to a PNG at path.
func PlotCurve(path, title string, recs []Record) error {
	if len(recs) < 2 {
		return fmt.Errorf("plotting %s: need at least two density levels, got %d", title, len(recs))
	}
	xs := make([]float64, len(recs))
	burnt := make([]float64, len(recs))
	steps := make([]float64, len(recs))
	maxSteps := 1.0
	for i, r := range recs {
		xs[i] = float64(r.Density)
		burnt[i] = r.BurntFraction
		steps[i] = r.MeanSteps
		if r.MeanSteps > maxSteps {
			maxSteps = r.MeanSteps
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  900,
		Height: 500,
		XAxis: chart.XAxis{
			Name:  "density %",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "burnt fraction",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		YAxisSecondary: chart.YAxis{
			Name:  "ticks",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: maxSteps * 1.05},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "burnt fraction",
				XValues: xs,
				YValues: burnt,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    "mean ticks",
				YAxis:   chart.YAxisSecondary,
				XValues: xs,
				YValues: steps,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 34, G: 139, B: 34, A: 255}, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}
