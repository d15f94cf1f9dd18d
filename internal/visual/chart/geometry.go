package chart

import (
	"fmt"
	"math"
	"slices"

	"github.com/shandysiswandi/govis/internal/visual/dataset"
	"github.com/shandysiswandi/govis/internal/visual/entity"
)

// points emits one point per row, in row order, with cells kept as stored.
func points(c *entity.Chart, ds *dataset.Dataset, x, y string) error {
	xs, ys, err := pair(ds, x, y)
	if err != nil {
		return err
	}

	c.Points = make([]entity.Point, len(xs))
	for i := range xs {
		c.Points[i] = entity.Point{X: xs[i], Y: ys[i]}
	}
	return nil
}

// bars emits one bar per row for numeric x. Categorical x collapses rows
// that share a category into one bar whose segments are the row values.
func bars(c *entity.Chart, ds *dataset.Dataset, x, y string) error {
	xs, ys, err := pair(ds, x, y)
	if err != nil {
		return err
	}

	if !c.XCategorical {
		c.Bars = make([]entity.Bar, 0, len(xs))
		for i := range xs {
			bar := entity.Bar{Label: label(xs[i]), X: xs[i], Segments: []float64{}}
			if v, ok := dataset.Number(ys[i]); ok {
				bar.Value = v
				bar.Segments = append(bar.Segments, v)
			}
			c.Bars = append(c.Bars, bar)
		}
		return nil
	}

	index := make(map[string]int)
	c.Bars = make([]entity.Bar, 0)
	for i := range xs {
		key := label(xs[i])
		pos, ok := index[key]
		if !ok {
			pos = len(c.Bars)
			index[key] = pos
			c.Bars = append(c.Bars, entity.Bar{Label: key, X: xs[i], Segments: []float64{}})
		}

		if v, ok := dataset.Number(ys[i]); ok {
			c.Bars[pos].Value += v
			c.Bars[pos].Segments = append(c.Bars[pos].Segments, v)
		}
	}
	return nil
}

// bins counts x values. Numeric x is split into Sturges' number of equal
// bins over [min, max]; other kinds get one bin per distinct value.
func bins(c *entity.Chart, ds *dataset.Dataset, x string) error {
	xs, err := ds.Values(x)
	if err != nil {
		return err
	}

	if c.XCategorical {
		index := make(map[string]int)
		c.Bins = make([]entity.Bin, 0)
		for _, v := range xs {
			if v == nil {
				continue
			}
			key := label(v)
			pos, ok := index[key]
			if !ok {
				pos = len(c.Bins)
				index[key] = pos
				c.Bins = append(c.Bins, entity.Bin{Label: key})
			}
			c.Bins[pos].Count++
		}
		return nil
	}

	values := numbers(xs)
	c.Bins = numericBins(values)
	return nil
}

func numericBins(values []float64) []entity.Bin {
	values = slices.DeleteFunc(slices.Clone(values), func(v float64) bool {
		return math.IsNaN(v) || math.IsInf(v, 0)
	})
	if len(values) == 0 {
		return []entity.Bin{}
	}

	lo, hi := slices.Min(values), slices.Max(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	k := SturgesBins(len(values))
	width := (hi - lo) / float64(k)

	out := make([]entity.Bin, k)
	for i := range out {
		start := lo + float64(i)*width
		end := start + width
		if i == k-1 {
			end = hi
		}
		out[i] = entity.Bin{Label: fmt.Sprintf("%g-%g", start, end), Start: start, End: end}
	}

	for _, v := range values {
		i := int((v - lo) / width)
		i = min(max(i, 0), k-1)
		out[i].Count++
	}
	return out
}

// SturgesBins returns ceil(log2(n)) + 1, at least 1.
func SturgesBins(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// boxes groups y by x category and summarises each group. Groups without
// a numeric y value are left out.
func boxes(c *entity.Chart, ds *dataset.Dataset, x, y string) error {
	xs, ys, err := pair(ds, x, y)
	if err != nil {
		return err
	}

	index := make(map[string]int)
	groups := make([][]float64, 0)
	labels := make([]string, 0)
	for i := range xs {
		v, ok := dataset.Number(ys[i])
		if !ok {
			continue
		}
		key := label(xs[i])
		pos, seen := index[key]
		if !seen {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, nil)
			labels = append(labels, key)
		}
		groups[pos] = append(groups[pos], v)
	}

	c.Boxes = make([]entity.Box, len(groups))
	for i, values := range groups {
		c.Boxes[i] = Summarize(labels[i], values)
	}
	return nil
}

// Summarize computes quartiles with linear interpolation, whiskers reaching
// the furthest values within 1.5 IQR of the box and the outliers beyond.
func Summarize(name string, values []float64) entity.Box {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	b := entity.Box{
		Label:  name,
		Count:  len(sorted),
		Min:    sorted[0],
		Q1:     dataset.Quantile(sorted, 0.25),
		Median: dataset.Quantile(sorted, 0.5),
		Q3:     dataset.Quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
		Values: sorted,
	}

	iqr := b.Q3 - b.Q1
	lowLimit, highLimit := b.Q1-1.5*iqr, b.Q3+1.5*iqr

	b.LowerFence, b.UpperFence = b.Q1, b.Q3
	for _, v := range sorted {
		if v < lowLimit || v > highLimit {
			b.Outliers = append(b.Outliers, v)
			continue
		}
		b.LowerFence = min(b.LowerFence, v)
		b.UpperFence = max(b.UpperFence, v)
	}
	return b
}

func pair(ds *dataset.Dataset, x, y string) ([]any, []any, error) {
	xs, err := ds.Values(x)
	if err != nil {
		return nil, nil, err
	}
	ys, err := ds.Values(y)
	if err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

func numbers(values []any) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := dataset.Number(v); ok {
			out = append(out, f)
		}
	}
	return out
}

func label(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}
