package bench

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot renders the per-operation latency of every structure as a grouped
// bar chart. The image format follows the extension of path.
func Plot(results []BenchResult, path string) error {
	if len(results) == 0 {
		return errors.New("bench: nothing to plot")
	}

	var (
		ops    []string
		opIdx  = map[string]int{}
		series []string
		values = map[string]plotter.Values{}
	)
	for _, r := range results {
		if _, ok := opIdx[r.Operation]; !ok {
			opIdx[r.Operation] = len(ops)
			ops = append(ops, r.Operation)
		}
	}
	for _, r := range results {
		name := r.Name + " " + r.Config
		v, ok := values[name]
		if !ok {
			series = append(series, name)
			v = make(plotter.Values, len(ops))
		}
		v[opIdx[r.Operation]] = float64(r.LatencyNs)
		values[name] = v
	}

	p := plot.New()
	p.Title.Text = "Latency per operation"
	p.Y.Label.Text = "ns/op"
	p.Legend.Top = true

	w := vg.Points(60 / float64(len(series)))
	for i, name := range series {
		bars, err := plotter.NewBarChart(values[name], w)
		if err != nil {
			return errors.Wrapf(err, "bench: bars for %s", name)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = w * vg.Length(i-len(series)/2)

		p.Add(bars)
		p.Legend.Add(name, bars)
	}
	p.NominalX(ops...)

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "bench: save plot %s", path)
	}
	return nil
}
