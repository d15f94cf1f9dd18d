package dataset

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary describes one column. Numeric columns fill the moment and
// quantile fields; other columns fill Unique, Top and Freq.
type ColumnSummary struct {
	Column string `json:"column" yaml:"column"`
	Kind   Kind   `json:"kind" yaml:"kind"`
	Count  int    `json:"count" yaml:"count"`

	Mean *float64 `json:"mean,omitempty" yaml:"mean,omitempty"`
	Std  *float64 `json:"std,omitempty" yaml:"std,omitempty"`
	Min  *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Q1   *float64 `json:"25%,omitempty" yaml:"25%,omitempty"`
	Q2   *float64 `json:"50%,omitempty" yaml:"50%,omitempty"`
	Q3   *float64 `json:"75%,omitempty" yaml:"75%,omitempty"`
	Max  *float64 `json:"max,omitempty" yaml:"max,omitempty"`

	Unique *int `json:"unique,omitempty" yaml:"unique,omitempty"`
	Top    any  `json:"top,omitempty" yaml:"top,omitempty"`
	Freq   *int `json:"freq,omitempty" yaml:"freq,omitempty"`
}

// Describe summarises every column in column order.
func (d *Dataset) Describe() ([]ColumnSummary, error) {
	cols := d.Columns()
	out := make([]ColumnSummary, 0, len(cols))

	for _, col := range cols {
		kind, err := d.Kind(col)
		if err != nil {
			return nil, err
		}
		values, err := d.Values(col)
		if err != nil {
			return nil, err
		}

		if kind.Numeric() {
			out = append(out, describeNumeric(col, kind, values))
		} else {
			out = append(out, describeCategorical(col, kind, values))
		}
	}

	return out, nil
}

func describeNumeric(col string, kind Kind, values []any) ColumnSummary {
	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := Number(v); ok {
			xs = append(xs, f)
		}
	}

	s := ColumnSummary{Column: col, Kind: kind, Count: len(xs)}
	if len(xs) == 0 {
		return s
	}

	slices.Sort(xs)
	s.Mean = ptr(stat.Mean(xs, nil))
	if len(xs) > 1 {
		s.Std = ptr(stat.StdDev(xs, nil))
	}
	s.Min = ptr(floats.Min(xs))
	s.Q1 = ptr(Quantile(xs, 0.25))
	s.Q2 = ptr(Quantile(xs, 0.5))
	s.Q3 = ptr(Quantile(xs, 0.75))
	s.Max = ptr(floats.Max(xs))

	return s
}

func describeCategorical(col string, kind Kind, values []any) ColumnSummary {
	counts := make(map[any]int)
	order := make([]any, 0)
	count := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		count++
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	s := ColumnSummary{Column: col, Kind: kind, Count: count, Unique: ptr(len(order))}
	if len(order) == 0 {
		return s
	}

	top := order[0]
	for _, v := range order[1:] {
		if counts[v] > counts[top] {
			top = v
		}
	}
	s.Top = fmt.Sprint(top)
	s.Freq = ptr(counts[top])

	return s
}

// Quantile returns the p-quantile of sorted using linear interpolation
// between the closest ranks, h = (n-1)p.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

func ptr[T any](v T) *T {
	return &v
}
