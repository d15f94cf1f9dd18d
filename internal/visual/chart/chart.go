package chart

import (
	"fmt"

	"github.com/shandysiswandi/govis/internal/visual/dataset"
	"github.com/shandysiswandi/govis/internal/visual/entity"
)

// ScatterColor is the fixed marker colour of scatter plots.
const ScatterColor = "#FF6F61"

type constructor struct {
	title func(x, y string) string
	build func(c *entity.Chart, ds *dataset.Dataset, x, y string) error
}

func versus(x, y string) string {
	return x + " vs " + y
}

var constructors = map[entity.ChartType]constructor{
	entity.ChartTypeScatter: {
		title: versus,
		build: func(c *entity.Chart, ds *dataset.Dataset, x, y string) error {
			c.Color = ScatterColor
			return points(c, ds, x, y)
		},
	},
	entity.ChartTypeLine: {
		title: versus,
		build: func(c *entity.Chart, ds *dataset.Dataset, x, y string) error {
			c.Markers = true
			return points(c, ds, x, y)
		},
	},
	entity.ChartTypeBar: {
		title: versus,
		build: bars,
	},
	entity.ChartTypeHistogram: {
		title: func(x, _ string) string { return "Histogram of " + x },
		build: func(c *entity.Chart, ds *dataset.Dataset, x, _ string) error {
			return bins(c, ds, x)
		},
	},
	entity.ChartTypeBox: {
		title: func(x, y string) string { return "Box Plot of " + y + " by " + x },
		build: boxes,
	},
}

// Build filters ds when the request carries a filter and hands the result
// to the constructor registered for the chart type. A filter that matches
// no row still produces a chart.
func Build(ds *dataset.Dataset, req entity.ChartRequest) (entity.Chart, error) {
	cons, ok := constructors[req.Type]
	if !ok {
		return entity.Chart{}, fmt.Errorf("%w: %q", ErrUnknownChartType, req.Type)
	}

	if req.Filter != nil {
		if !ds.Has(req.Filter.Column) {
			return entity.Chart{}, &UnknownColumnError{Column: req.Filter.Column, Role: "filter"}
		}

		filtered, err := ds.Where(req.Filter.Column, req.Filter.Value)
		if err != nil {
			return entity.Chart{}, err
		}
		ds = filtered
	}

	if !ds.Has(req.X) {
		return entity.Chart{}, &UnknownColumnError{Column: req.X, Role: "x"}
	}
	y := ""
	if req.Type.NeedsY() {
		if !ds.Has(req.Y) {
			return entity.Chart{}, &UnknownColumnError{Column: req.Y, Role: "y"}
		}
		y = req.Y
	}

	kind, err := ds.Kind(req.X)
	if err != nil {
		return entity.Chart{}, err
	}

	c := entity.Chart{
		Type:         req.Type,
		Title:        cons.title(req.X, req.Y),
		XLabel:       req.X,
		YLabel:       y,
		Rows:         ds.Len(),
		XCategorical: !kind.Numeric(),
	}
	if req.Type == entity.ChartTypeHistogram {
		c.YLabel = "count"
	}

	if err := cons.build(&c, ds, req.X, y); err != nil {
		return entity.Chart{}, err
	}
	return c, nil
}

// Supported reports whether a constructor exists for t.
func Supported(t entity.ChartType) bool {
	_, ok := constructors[t]
	return ok
}
