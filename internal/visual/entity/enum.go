package entity

import "strings"

// ChartType selects the chart constructor.
type ChartType string

const (
	ChartTypeScatter   ChartType = "scatter"
	ChartTypeLine      ChartType = "line"
	ChartTypeBar       ChartType = "bar"
	ChartTypeHistogram ChartType = "histogram"
	ChartTypeBox       ChartType = "box"
)

// ChartTypes lists every supported chart type in selector order.
func ChartTypes() []ChartType {
	return []ChartType{ChartTypeScatter, ChartTypeLine, ChartTypeBar, ChartTypeHistogram, ChartTypeBox}
}

// ParseChartType accepts the short names ("bar") and the selector labels
// shown to users ("Bar Chart"), case-insensitively.
func ParseChartType(s string) (ChartType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scatter", "scatter plot":
		return ChartTypeScatter, true
	case "line", "line chart":
		return ChartTypeLine, true
	case "bar", "bar chart":
		return ChartTypeBar, true
	case "histogram":
		return ChartTypeHistogram, true
	case "box", "box plot":
		return ChartTypeBox, true
	default:
		return "", false
	}
}

// Label is the human readable selector label.
func (t ChartType) Label() string {
	switch t {
	case ChartTypeScatter:
		return "Scatter Plot"
	case ChartTypeLine:
		return "Line Chart"
	case ChartTypeBar:
		return "Bar Chart"
	case ChartTypeHistogram:
		return "Histogram"
	case ChartTypeBox:
		return "Box Plot"
	default:
		return string(t)
	}
}

// NeedsY reports whether the chart reads the y column.
func (t ChartType) NeedsY() bool {
	return t != ChartTypeHistogram
}

// Format is the tabular format selected from the upload's extension.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatJSON  Format = "json"
)

// OutputFormat is how a built chart is returned.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputPNG  OutputFormat = "png"
	OutputSVG  OutputFormat = "svg"
)

// ParseOutputFormat defaults to json for an empty value.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return OutputJSON, true
	case "png":
		return OutputPNG, true
	case "svg":
		return OutputSVG, true
	default:
		return "", false
	}
}

// ContentType is the MIME type of the rendered output.
func (f OutputFormat) ContentType() string {
	switch f {
	case OutputPNG:
		return "image/png"
	case OutputSVG:
		return "image/svg+xml"
	default:
		return "application/json"
	}
}
