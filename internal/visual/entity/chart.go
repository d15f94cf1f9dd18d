package entity

// Filter narrows a dataset to rows whose Column equals Value.
// A nil Value matches null cells.
type Filter struct {
	Column string `json:"column"`
	Value  any    `json:"value"`
}

// ChartRequest is the selection state for one render cycle.
type ChartRequest struct {
	Type   ChartType `json:"chart_type"`
	X      string    `json:"x"`
	Y      string    `json:"y,omitempty"`
	Filter *Filter   `json:"filter,omitempty"`
}

// Chart is a built chart: labels plus exactly one populated geometry.
type Chart struct {
	ID      int64     `json:"id,string"`
	Type    ChartType `json:"chart_type"`
	Title   string    `json:"title"`
	XLabel  string    `json:"x_label"`
	YLabel  string    `json:"y_label,omitempty"`
	Color   string    `json:"color,omitempty"`
	Markers bool      `json:"markers,omitempty"`
	Rows    int       `json:"rows"`

	// XCategorical is true when x values are not numeric and are placed by
	// first appearance instead of by value.
	XCategorical bool `json:"x_categorical"`

	Points []Point `json:"points,omitempty"`
	Bars   []Bar   `json:"bars,omitempty"`
	Bins   []Bin   `json:"bins,omitempty"`
	Boxes  []Box   `json:"boxes,omitempty"`
}

// Point is one row of a scatter or line chart. Values are kept as stored.
type Point struct {
	X any `json:"x"`
	Y any `json:"y"`
}

// Bar is one bar; Segments holds the per-row contributions stacked in it.
type Bar struct {
	Label    string    `json:"label"`
	X        any       `json:"x"`
	Value    float64   `json:"value"`
	Segments []float64 `json:"segments"`
}

// Bin is one histogram bin. Categorical bins leave Start and End at zero.
type Bin struct {
	Label string  `json:"label"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// Box holds the quartile statistics of y within one x category.
type Box struct {
	Label      string    `json:"label"`
	Count      int       `json:"count"`
	Min        float64   `json:"min"`
	Q1         float64   `json:"q1"`
	Median     float64   `json:"median"`
	Q3         float64   `json:"q3"`
	Max        float64   `json:"max"`
	LowerFence float64   `json:"lower_fence"`
	UpperFence float64   `json:"upper_fence"`
	Outliers   []float64 `json:"outliers,omitempty"`
	Values     []float64 `json:"-"`
}

// Empty reports whether the chart has nothing to draw.
func (c Chart) Empty() bool {
	return len(c.Points) == 0 && len(c.Bars) == 0 && len(c.Bins) == 0 && len(c.Boxes) == 0
}
