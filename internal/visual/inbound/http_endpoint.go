package inbound

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shandysiswandi/govis/internal/pkg/pkgerror"
	"github.com/shandysiswandi/govis/internal/visual/entity"
	"github.com/shandysiswandi/govis/internal/visual/usecase"
)

// maxFieldBytes bounds a single non-file form field.
const maxFieldBytes = 64 << 10

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Inspect(ctx context.Context, r *http.Request) (any, error) {
	file, form, err := extractUpload(r)
	if err != nil {
		return nil, err
	}

	summary, err := parseBool(form.Get("summary"), "summary")
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Inspect(ctx, usecase.InspectInput{File: file, Summary: summary})
	if err != nil {
		return nil, err
	}

	return toInspectResponse(result), nil
}

func (h *HTTPEndpoint) Values(ctx context.Context, r *http.Request) (any, error) {
	file, form, err := extractUpload(r)
	if err != nil {
		return nil, err
	}

	column := form.Get("column")
	if column == "" {
		return nil, pkgerror.NewInvalidInput(errors.New("column is required"))
	}

	result, err := h.uc.Values(ctx, usecase.ValuesInput{File: file, Column: column})
	if err != nil {
		return nil, err
	}

	return ValuesResponse{Column: result.Column, Values: result.Values}, nil
}

func (h *HTTPEndpoint) ChartTypes(context.Context, *http.Request) (any, error) {
	types := entity.ChartTypes()
	resp := make(ChartTypesResponse, len(types))
	for i, t := range types {
		resp[i] = ChartType{Type: t, Label: t.Label(), NeedY: t.NeedsY()}
	}
	return resp, nil
}

func (h *HTTPEndpoint) Chart(ctx context.Context, r *http.Request) (any, error) {
	file, form, err := extractUpload(r)
	if err != nil {
		return nil, err
	}

	in, err := parseChartInput(form)
	if err != nil {
		return nil, err
	}
	in.File = file

	result, err := h.uc.Chart(ctx, in)
	if err != nil {
		return nil, err
	}

	if result.Image != nil {
		return ImageResponse{contentType: result.ContentType, body: result.Image}, nil
	}
	return ChartResponse{Chart: result.Chart}, nil
}

func parseChartInput(form url.Values) (usecase.ChartInput, error) {
	typ, ok := entity.ParseChartType(form.Get("chart_type"))
	if !ok {
		return usecase.ChartInput{}, pkgerror.NewInvalidInput(errors.New("invalid chart_type"))
	}

	format, ok := entity.ParseOutputFormat(form.Get("format"))
	if !ok {
		return usecase.ChartInput{}, pkgerror.NewInvalidInput(errors.New("invalid format"))
	}

	in := usecase.ChartInput{
		Type:   typ,
		X:      form.Get("x"),
		Y:      form.Get("y"),
		Format: format,
	}
	if in.X == "" {
		return usecase.ChartInput{}, pkgerror.NewInvalidInput(errors.New("x is required"))
	}
	if typ.NeedsY() && in.Y == "" {
		return usecase.ChartInput{}, pkgerror.NewInvalidInput(errors.New("y is required"))
	}

	if column := form.Get("filter_column"); column != "" {
		null, err := parseBool(form.Get("filter_null"), "filter_null")
		if err != nil {
			return usecase.ChartInput{}, err
		}
		in.Filter = &usecase.RawFilter{Column: column, Value: form.Get("filter_value"), Null: null}
	}

	return in, nil
}

func parseBool(raw, name string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerror.NewInvalidInput(errors.New("invalid " + name))
	}
	return v, nil
}

// extractUpload reads the uploaded file and the form fields. Multipart
// bodies carry the file in the "file" part; any other body is the file
// itself, named by the file_name query parameter. Query parameters fill
// fields the form leaves out.
func extractUpload(r *http.Request) (entity.UploadedFile, url.Values, error) {
	query := r.URL.Query()

	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil && strings.EqualFold(mediaType, "multipart/form-data") {
			file, form, err := extractMultipart(r)
			if err != nil {
				return entity.UploadedFile{}, nil, err
			}
			for k, v := range query {
				if _, ok := form[k]; !ok {
					form[k] = v
				}
			}
			return file, form, nil
		}
	}

	name := strings.TrimSpace(query.Get("file_name"))
	if name == "" {
		return entity.UploadedFile{}, nil, pkgerror.NewInvalidInput(errors.New("file_name is required for raw uploads"))
	}
	if r.Body == nil {
		return entity.UploadedFile{}, nil, pkgerror.NewInvalidInput(errors.New("empty request body"))
	}

	content, err := io.ReadAll(r.Body)
	if err != nil {
		return entity.UploadedFile{}, nil, bodyError(err)
	}

	return entity.UploadedFile{Name: name, Content: content}, query, nil
}

func extractMultipart(r *http.Request) (entity.UploadedFile, url.Values, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return entity.UploadedFile{}, nil, pkgerror.NewInvalidFormat()
	}

	var (
		file  entity.UploadedFile
		found bool
		form  = url.Values{}
	)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return entity.UploadedFile{}, nil, bodyError(err)
		}

		switch name := part.FormName(); {
		case name == "file" && !found:
			content, err := io.ReadAll(part)
			if err != nil {
				_ = part.Close()
				return entity.UploadedFile{}, nil, bodyError(err)
			}
			file = entity.UploadedFile{Name: part.FileName(), Content: content}
			found = true
		case name != "":
			value, err := io.ReadAll(io.LimitReader(part, maxFieldBytes))
			if err != nil {
				_ = part.Close()
				return entity.UploadedFile{}, nil, bodyError(err)
			}
			form.Add(name, string(value))
		}
		_ = part.Close()
	}

	if !found {
		return entity.UploadedFile{}, nil, pkgerror.NewInvalidInput(errors.New("file part is required"))
	}
	return file, form, nil
}

// bodyError keeps size-limit failures for the router and reports anything
// else as a malformed body.
func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return err
	}
	return pkgerror.NewInvalidFormat()
}
