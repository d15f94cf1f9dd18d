package inbound

import (
	"context"

	"github.com/shandysiswandi/govis/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/govis/internal/visual/usecase"
)

type uc interface {
	Inspect(ctx context.Context, in usecase.InspectInput) (usecase.InspectResult, error)
	Values(ctx context.Context, in usecase.ValuesInput) (usecase.ValuesResult, error)
	Chart(ctx context.Context, in usecase.ChartInput) (usecase.ChartResult, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/datasets/inspect", end.Inspect) // multipart file, ?summary=
	r.POST("/datasets/values", end.Values)   // multipart file + column

	r.GET("/charts/types", end.ChartTypes)
	r.POST("/charts", end.Chart) // multipart file + chart_type, x, y, filter_*, format
}
