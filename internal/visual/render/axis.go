package render

import (
	"fmt"

	"github.com/shandysiswandi/govis/internal/visual/dataset"
	"github.com/shandysiswandi/govis/internal/visual/entity"
)

type tick struct {
	pos   float64
	label string
}

// axis places values on a float axis. Categorical values take positions
// 0, 1, 2 in first-appearance order.
type axis struct {
	categorical bool
	index       map[string]int
	ticks       []tick
}

func newAxis(categorical bool) *axis {
	return &axis{categorical: categorical, index: make(map[string]int)}
}

func (a *axis) place(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if !a.categorical {
		return dataset.Number(v)
	}

	key := fmt.Sprint(v)
	pos, ok := a.index[key]
	if !ok {
		pos = len(a.ticks)
		a.index[key] = pos
		a.ticks = append(a.ticks, tick{pos: float64(pos), label: key})
	}
	return float64(pos), true
}

func (a *axis) labels() []string {
	out := make([]string, len(a.ticks))
	for i, t := range a.ticks {
		out[i] = t.label
	}
	return out
}

// xySeries projects chart points onto two axes, skipping points that have
// no position. y is categorical when any present y value is not numeric.
type xySeries struct {
	xs, ys []float64
	x, y   *axis
}

func project(c entity.Chart) xySeries {
	yCategorical := false
	for _, p := range c.Points {
		if p.Y == nil {
			continue
		}
		if _, ok := dataset.Number(p.Y); !ok {
			yCategorical = true
			break
		}
	}

	s := xySeries{x: newAxis(c.XCategorical), y: newAxis(yCategorical)}
	for _, p := range c.Points {
		x, ok := s.x.place(p.X)
		if !ok {
			continue
		}
		y, ok := s.y.place(p.Y)
		if !ok {
			continue
		}
		s.xs = append(s.xs, x)
		s.ys = append(s.ys, y)
	}
	return s
}

// span returns a non-degenerate [lo, hi] covering values.
func span(values ...float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo, hi = min(lo, v), max(hi, v)
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}
