package inbound

import (
	"github.com/shandysiswandi/govis/internal/visual/dataset"
	"github.com/shandysiswandi/govis/internal/visual/entity"
	"github.com/shandysiswandi/govis/internal/visual/usecase"
)

type Column struct {
	Name string       `json:"name"`
	Kind dataset.Kind `json:"kind"`
}

type InspectResponse struct {
	FileName string                  `json:"file_name"`
	Format   entity.Format           `json:"format"`
	Rows     int                     `json:"rows"`
	Columns  []Column                `json:"columns"`
	Preview  [][]any                 `json:"preview"`
	Summary  []dataset.ColumnSummary `json:"summary,omitempty"`
}

func (InspectResponse) Message() string {
	return "dataset loaded"
}

type ValuesResponse struct {
	Column string `json:"column"`
	Values []any  `json:"values"`
}

type ChartType struct {
	Type  entity.ChartType `json:"type"`
	Label string           `json:"label"`
	NeedY bool             `json:"needs_y"`
}

type ChartTypesResponse []ChartType

type ChartResponse struct {
	entity.Chart
}

func (ChartResponse) Message() string {
	return "chart built"
}

func (r ChartResponse) Meta() map[string]any {
	return map[string]any{"rows": r.Rows, "empty": r.Empty()}
}

// ImageResponse is written as-is with its content type.
type ImageResponse struct {
	contentType string
	body        []byte
}

func (i ImageResponse) ContentType() string {
	return i.contentType
}

func (i ImageResponse) Bytes() []byte {
	return i.body
}

func toInspectResponse(in usecase.InspectResult) InspectResponse {
	cols := make([]Column, len(in.Columns))
	for i, c := range in.Columns {
		cols[i] = Column{Name: c.Name, Kind: c.Kind}
	}

	return InspectResponse{
		FileName: in.FileName,
		Format:   in.Format,
		Rows:     in.Rows,
		Columns:  cols,
		Preview:  in.Preview,
		Summary:  in.Summary,
	}
}
