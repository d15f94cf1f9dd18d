package usecase

import (
	"github.com/shandysiswandi/govis/internal/visual/dataset"
	"github.com/shandysiswandi/govis/internal/visual/entity"
)

type InspectInput struct {
	File    entity.UploadedFile
	Summary bool
}

type Column struct {
	Name string       `json:"name" yaml:"name"`
	Kind dataset.Kind `json:"kind" yaml:"kind"`
}

type InspectResult struct {
	FileName string                  `json:"file_name" yaml:"file_name"`
	Format   entity.Format           `json:"format" yaml:"format"`
	Rows     int                     `json:"rows" yaml:"rows"`
	Columns  []Column                `json:"columns" yaml:"columns"`
	Preview  [][]any                 `json:"preview" yaml:"preview"`
	Summary  []dataset.ColumnSummary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

type ValuesInput struct {
	File   entity.UploadedFile
	Column string
}

type ValuesResult struct {
	Column string `json:"column" yaml:"column"`
	Values []any  `json:"values" yaml:"values"`
}

// RawFilter is an equality filter as typed by a user. Value is coerced to
// the column's kind; Null selects null cells instead.
type RawFilter struct {
	Column string
	Value  string
	Null   bool
}

type ChartInput struct {
	File   entity.UploadedFile
	Type   entity.ChartType
	X      string
	Y      string
	Filter *RawFilter
	Format entity.OutputFormat
}

type ChartResult struct {
	Chart       entity.Chart
	Image       []byte
	ContentType string
}
