package usecase

import (
	"errors"

	"github.com/shandysiswandi/govis/internal/pkg/pkgerror"
	"github.com/shandysiswandi/govis/internal/visual/chart"
	"github.com/shandysiswandi/govis/internal/visual/dataset"
	"github.com/shandysiswandi/govis/internal/visual/loader"
)

func mapError(err error) error {
	var (
		unsupported *loader.UnsupportedFormatError
		parse       *loader.ParseError
		column      *chart.UnknownColumnError
	)

	switch {
	case errors.As(err, &unsupported):
		return pkgerror.NewUnsupportedMedia(err).WithField("extension", unsupported.Ext)
	case errors.As(err, &parse):
		return pkgerror.NewUnprocessable(err, "cannot parse dataset").WithField("format", string(parse.Format))
	case errors.As(err, &column):
		return pkgerror.NewUnprocessable(err, "unknown column").
			WithField("column", column.Column).
			WithField("role", column.Role)
	case errors.Is(err, dataset.ErrColumnNotFound):
		return pkgerror.NewUnprocessable(err, "unknown column")
	case errors.Is(err, chart.ErrUnknownChartType):
		return pkgerror.NewUnprocessable(err, "unknown chart type")
	default:
		return pkgerror.NewServer(err)
	}
}
