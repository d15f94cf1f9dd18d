package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/shandysiswandi/govis/internal/visual/entity"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var palette = []string{"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD", "#8C564B"}

// GoChart renders charts with github.com/wcharczuk/go-chart.
type GoChart struct {
	width, height int
}

func (g *GoChart) Render(w io.Writer, c entity.Chart, f entity.OutputFormat) error {
	if err := checkFormat(f); err != nil {
		return err
	}

	provider := chart.PNG
	if f == entity.OutputSVG {
		provider = chart.SVG
	}

	switch c.Type {
	case entity.ChartTypeBar, entity.ChartTypeHistogram:
		bars := g.values(c)
		if len(bars) == 0 {
			return g.canvas(c, nil, nil).Render(provider, w)
		}
		return g.barChart(c, bars).Render(provider, w)
	case entity.ChartTypeScatter, entity.ChartTypeLine:
		return g.points(c).Render(provider, w)
	case entity.ChartTypeBox:
		return g.boxes(c).Render(provider, w)
	default:
		return fmt.Errorf("gochart: no drawing for chart type %q", c.Type)
	}
}

func (g *GoChart) values(c entity.Chart) []chart.Value {
	out := make([]chart.Value, 0, len(c.Bars)+len(c.Bins))
	for _, b := range c.Bars {
		out = append(out, chart.Value{Label: b.Label, Value: b.Value})
	}
	for _, b := range c.Bins {
		out = append(out, chart.Value{Label: b.Label, Value: float64(b.Count)})
	}
	return out
}

func (g *GoChart) barChart(c entity.Chart, bars []chart.Value) chart.BarChart {
	values := make([]float64, 0, len(bars)+1)
	values = append(values, 0)
	for i := range bars {
		bars[i].Style = chart.Style{FillColor: drawingColor(palette[0]), StrokeColor: drawingColor(palette[0])}
		values = append(values, bars[i].Value)
	}
	lo, hi := span(values...)

	return chart.BarChart{
		Title:    c.Title,
		Width:    g.width,
		Height:   g.height,
		BarWidth: max(4, g.width/(2*len(bars)+1)),
		YAxis: chart.YAxis{
			Name:  c.YLabel,
			Range: &chart.ContinuousRange{Min: min(lo, 0), Max: hi},
		},
		Bars: bars,
	}
}

func (g *GoChart) points(c entity.Chart) chart.Chart {
	s := project(c)

	style := chart.Style{
		StrokeWidth: 2,
		StrokeColor: drawingColor(palette[0]),
		DotWidth:    3,
		DotColor:    drawingColor(palette[0]),
	}
	if c.Type == entity.ChartTypeScatter {
		style = chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    5,
			DotColor:    drawingColor(c.Color),
		}
	}

	var series []chart.Series
	if len(s.xs) > 0 {
		series = append(series, chart.ContinuousSeries{Name: c.YLabel, XValues: s.xs, YValues: s.ys, Style: style})
	}

	ch := g.canvas(c, series, s.ys)
	ch.XAxis.Range = rangeOf(s.xs...)
	if s.x.categorical {
		ch.XAxis.Ticks = goTicks(s.x.ticks)
	}
	if s.y.categorical {
		ch.YAxis.Ticks = goTicks(s.y.ticks)
	}
	return ch
}

func (g *GoChart) boxes(c entity.Chart) chart.Chart {
	const half = 0.3

	var (
		series []chart.Series
		ys     []float64
		ticks  []tick
	)
	for i, b := range c.Boxes {
		x := float64(i)
		col := drawingColor(palette[i%len(palette)])
		line := chart.Style{StrokeWidth: 1.5, StrokeColor: col}

		series = append(series,
			chart.ContinuousSeries{
				XValues: []float64{x - half, x + half, x + half, x - half, x - half},
				YValues: []float64{b.Q1, b.Q1, b.Q3, b.Q3, b.Q1},
				Style:   line,
			},
			chart.ContinuousSeries{XValues: []float64{x - half, x + half}, YValues: []float64{b.Median, b.Median}, Style: line},
			chart.ContinuousSeries{XValues: []float64{x, x}, YValues: []float64{b.LowerFence, b.Q1}, Style: line},
			chart.ContinuousSeries{XValues: []float64{x, x}, YValues: []float64{b.Q3, b.UpperFence}, Style: line},
		)
		if len(b.Outliers) > 0 {
			xs := make([]float64, len(b.Outliers))
			for j := range xs {
				xs[j] = x
			}
			series = append(series, chart.ContinuousSeries{
				XValues: xs,
				YValues: b.Outliers,
				Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 3, DotColor: col},
			})
		}

		ys = append(ys, b.Min, b.Max)
		ticks = append(ticks, tick{pos: x, label: b.Label})
	}

	ch := g.canvas(c, series, ys)
	ch.XAxis.Range = &chart.ContinuousRange{Min: -0.5, Max: float64(max(len(c.Boxes), 1)) - 0.5}
	ch.XAxis.Ticks = goTicks(ticks)
	return ch
}

// canvas returns a chart with labels and ranges set. An invisible series
// stands in when there is nothing to draw.
func (g *GoChart) canvas(c entity.Chart, series []chart.Series, ys []float64) chart.Chart {
	if len(series) == 0 {
		series = []chart.Series{chart.ContinuousSeries{
			XValues: []float64{0, 1},
			YValues: []float64{0, 1},
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 0},
		}}
	}

	return chart.Chart{
		Title:  c.Title,
		Width:  g.width,
		Height: g.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  chart.XAxis{Name: c.XLabel, Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		YAxis:  chart.YAxis{Name: c.YLabel, Range: rangeOf(ys...)},
		Series: series,
	}
}

func rangeOf(values ...float64) *chart.ContinuousRange {
	lo, hi := span(values...)
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func goTicks(ticks []tick) []chart.Tick {
	out := make([]chart.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = chart.Tick{Value: t.pos, Label: t.label}
	}
	return out
}

func drawingColor(hex string) drawing.Color {
	if hex == "" {
		hex = palette[0]
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
