package bench

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WritePlot renders build time against point count as a line chart.
func WritePlot(results []Result, path string) error {
	p := plot.New()
	p.Title.Text = "octree build time"
	p.X.Label.Text = "points"
	p.Y.Label.Text = "seconds"

	xys := make(plotter.XYs, len(results))
	for i, result := range results {
		xys[i].X = float64(result.Size)
		xys[i].Y = result.Elapsed.Seconds()
	}
	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("build plot series: %w", err)
	}
	p.Add(line, scatter)
	p.Legend.Add("build", line, scatter)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
