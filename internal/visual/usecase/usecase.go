package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/shandysiswandi/govis/internal/pkg/pkgerror"
	"github.com/shandysiswandi/govis/internal/pkg/pkguid"
	"github.com/shandysiswandi/govis/internal/visual/chart"
	"github.com/shandysiswandi/govis/internal/visual/dataset"
	"github.com/shandysiswandi/govis/internal/visual/entity"
	"github.com/shandysiswandi/govis/internal/visual/loader"
)

const defaultPreviewRows = 5

type Renderer interface {
	Render(w io.Writer, c entity.Chart, f entity.OutputFormat) error
}

type Dependency struct {
	Renderer    Renderer
	ID          pkguid.NumberID
	PreviewRows int
}

// Usecase runs one upload-to-chart cycle per call. It keeps no state
// between calls.
type Usecase struct {
	renderer    Renderer
	id          pkguid.NumberID
	previewRows int
}

func New(dep Dependency) *Usecase {
	rows := dep.PreviewRows
	if rows <= 0 {
		rows = defaultPreviewRows
	}

	return &Usecase{
		renderer:    dep.Renderer,
		id:          dep.ID,
		previewRows: rows,
	}
}

func (u *Usecase) Inspect(ctx context.Context, in InspectInput) (InspectResult, error) {
	ds, format, err := u.load(ctx, in.File)
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{
		FileName: in.File.Name,
		Format:   format,
		Rows:     ds.Len(),
		Columns:  make([]Column, 0, len(ds.Columns())),
	}
	for _, name := range ds.Columns() {
		kind, err := ds.Kind(name)
		if err != nil {
			return InspectResult{}, pkgerror.NewServer(err)
		}
		result.Columns = append(result.Columns, Column{Name: name, Kind: kind})
	}

	result.Preview, err = ds.Head(u.previewRows)
	if err != nil {
		return InspectResult{}, pkgerror.NewServer(err)
	}

	if in.Summary {
		result.Summary, err = ds.Describe()
		if err != nil {
			return InspectResult{}, pkgerror.NewServer(err)
		}
	}

	return result, nil
}

func (u *Usecase) Values(ctx context.Context, in ValuesInput) (ValuesResult, error) {
	ds, _, err := u.load(ctx, in.File)
	if err != nil {
		return ValuesResult{}, err
	}

	values, err := ds.Unique(in.Column)
	if err != nil {
		return ValuesResult{}, mapError(err)
	}

	return ValuesResult{Column: in.Column, Values: values}, nil
}

func (u *Usecase) Chart(ctx context.Context, in ChartInput) (ChartResult, error) {
	ds, _, err := u.load(ctx, in.File)
	if err != nil {
		return ChartResult{}, err
	}

	req := entity.ChartRequest{Type: in.Type, X: in.X, Y: in.Y}
	if in.Filter != nil {
		req.Filter, err = filterFor(ds, *in.Filter)
		if err != nil {
			return ChartResult{}, err
		}
	}

	c, err := chart.Build(ds, req)
	if err != nil {
		slog.WarnContext(ctx, "chart rejected", "chart_type", in.Type, "x", in.X, "y", in.Y, "error", err)
		return ChartResult{}, mapError(err)
	}
	if u.id != nil {
		c.ID = u.id.Generate()
	}

	slog.InfoContext(ctx, "chart built",
		"chart_id", c.ID,
		"chart_type", c.Type,
		"rows", c.Rows,
		"filtered", req.Filter != nil,
	)

	result := ChartResult{Chart: c, ContentType: in.Format.ContentType()}
	if in.Format == "" || in.Format == entity.OutputJSON {
		return result, nil
	}

	if u.renderer == nil {
		return ChartResult{}, pkgerror.NewServer(errors.New("no renderer configured"))
	}

	var buf bytes.Buffer
	if err := u.renderer.Render(&buf, c, in.Format); err != nil {
		return ChartResult{}, pkgerror.NewServer(err)
	}
	result.Image = buf.Bytes()

	return result, nil
}

func (u *Usecase) load(ctx context.Context, file entity.UploadedFile) (*dataset.Dataset, entity.Format, error) {
	format, err := loader.FormatOf(file.Name)
	if err != nil {
		slog.WarnContext(ctx, "upload rejected", "file", file.Name, "error", err)
		return nil, "", mapError(err)
	}

	ds, err := loader.Load(file)
	if err != nil {
		slog.WarnContext(ctx, "upload rejected", "file", file.Name, "format", format, "error", err)
		return nil, "", mapError(err)
	}

	slog.InfoContext(ctx, "upload loaded",
		"file", file.Name,
		"format", format,
		"bytes", len(file.Content),
		"rows", ds.Len(),
		"columns", len(ds.Columns()),
	)

	return ds, format, nil
}

// filterFor coerces the typed value to the filter column's kind. Text that
// does not fit the kind is passed through unchanged and matches no row.
func filterFor(ds *dataset.Dataset, raw RawFilter) (*entity.Filter, error) {
	if raw.Null {
		return &entity.Filter{Column: raw.Column}, nil
	}

	if !ds.Has(raw.Column) {
		return nil, mapError(&chart.UnknownColumnError{Column: raw.Column, Role: "filter"})
	}

	value, ok, err := ds.ParseValue(raw.Column, raw.Value)
	if err != nil {
		return nil, mapError(err)
	}
	if !ok {
		value = raw.Value
	}

	return &entity.Filter{Column: raw.Column, Value: value}, nil
}
