package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/shandysiswandi/govis/internal/visual/entity"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Gonum renders charts with gonum.org/v1/plot.
type Gonum struct {
	width, height int
}

func (g *Gonum) Render(w io.Writer, c entity.Chart, f entity.OutputFormat) error {
	if err := checkFormat(f); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())

	var err error
	switch c.Type {
	case entity.ChartTypeScatter, entity.ChartTypeLine:
		err = g.points(p, c)
	case entity.ChartTypeBar:
		err = g.bars(p, c)
	case entity.ChartTypeHistogram:
		err = g.histogram(p, c)
	case entity.ChartTypeBox:
		err = g.boxes(p, c)
	default:
		err = fmt.Errorf("gonum: no drawing for chart type %q", c.Type)
	}
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(pixels(g.width), pixels(g.height), string(f))
	if err != nil {
		return fmt.Errorf("gonum: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func (g *Gonum) points(p *plot.Plot, c entity.Chart) error {
	s := project(c)
	if len(s.xs) > 0 {
		xys := make(plotter.XYs, len(s.xs))
		for i := range s.xs {
			xys[i] = plotter.XY{X: s.xs[i], Y: s.ys[i]}
		}

		if c.Type == entity.ChartTypeLine {
			line, pts, err := plotter.NewLinePoints(xys)
			if err != nil {
				return err
			}
			line.Color = plotutil.Color(0)
			pts.GlyphStyle.Shape = draw.CircleGlyph{}
			pts.GlyphStyle.Color = plotutil.Color(0)
			p.Add(line, pts)
		} else {
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return err
			}
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
			sc.GlyphStyle.Radius = vg.Points(3)
			sc.GlyphStyle.Color = hexColor(c.Color)
			p.Add(sc)
		}
	}

	if s.x.categorical && len(s.x.ticks) > 0 {
		p.NominalX(s.x.labels()...)
	}
	if s.y.categorical {
		p.Y.Tick.Marker = constantTicks(s.y.ticks)
	}
	return nil
}

func (g *Gonum) bars(p *plot.Plot, c entity.Chart) error {
	if len(c.Bars) == 0 {
		return nil
	}

	values := make(plotter.Values, len(c.Bars))
	labels := make([]string, len(c.Bars))
	for i, b := range c.Bars {
		values[i] = b.Value
		labels[i] = b.Label
	}

	bc, err := plotter.NewBarChart(values, barWidth(g.width, len(values)))
	if err != nil {
		return err
	}
	bc.Color = plotutil.Color(0)
	bc.LineStyle.Width = vg.Length(0)
	p.Add(bc)
	p.NominalX(labels...)
	return nil
}

func (g *Gonum) histogram(p *plot.Plot, c entity.Chart) error {
	if len(c.Bins) == 0 {
		return nil
	}

	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(c.Bins)),
		FillColor: plotutil.Color(2),
		LineStyle: plotter.DefaultLineStyle,
	}
	labels := make([]string, len(c.Bins))
	for i, b := range c.Bins {
		labels[i] = b.Label
		if c.XCategorical {
			h.Bins[i] = plotter.HistogramBin{Min: float64(i) - 0.4, Max: float64(i) + 0.4, Weight: float64(b.Count)}
			continue
		}
		h.Bins[i] = plotter.HistogramBin{Min: b.Start, Max: b.End, Weight: float64(b.Count)}
	}
	h.Width = h.Bins[0].Max - h.Bins[0].Min
	p.Add(h)

	if c.XCategorical {
		p.NominalX(labels...)
	}
	return nil
}

func (g *Gonum) boxes(p *plot.Plot, c entity.Chart) error {
	if len(c.Boxes) == 0 {
		return nil
	}

	labels := make([]string, len(c.Boxes))
	width := barWidth(g.width, len(c.Boxes))
	for i, b := range c.Boxes {
		labels[i] = b.Label
		bp, err := plotter.NewBoxPlot(width, float64(i), plotter.Values(b.Values))
		if err != nil {
			return err
		}
		bp.FillColor = plotutil.Color(i)
		p.Add(bp)
	}
	p.NominalX(labels...)
	return nil
}

func constantTicks(ticks []tick) plot.ConstantTicks {
	out := make(plot.ConstantTicks, len(ticks))
	for i, t := range ticks {
		out[i] = plot.Tick{Value: t.pos, Label: t.label}
	}
	return out
}

// pixels converts a pixel count to a length at the default 96 dpi.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / 96
}

func barWidth(canvas, n int) vg.Length {
	w := pixels(canvas) / vg.Length(max(n, 1)*2)
	return min(w, vg.Points(40))
}

func hexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return plotutil.Color(0)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
