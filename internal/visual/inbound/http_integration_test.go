package inbound

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/govis/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/govis/internal/pkg/pkguid"
	"github.com/shandysiswandi/govis/internal/visual/entity"
	"github.com/shandysiswandi/govis/internal/visual/render"
	"github.com/shandysiswandi/govis/internal/visual/usecase"
)

const salesCSV = "city,sales\nNYC,10\nLA,20\nNYC,30\n"

type envelope[T any] struct {
	Message string         `json:"message"`
	Data    T              `json:"data"`
	Meta    map[string]any `json:"meta,omitempty"`
}

type errorEnvelope struct {
	Message string            `json:"message"`
	Error   map[string]string `json:"error"`
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	renderer, err := render.New(render.EngineGonum, 320, 240)
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	ids, err := pkguid.NewSnowflakeNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	uc := usecase.New(usecase.Dependency{Renderer: renderer, ID: ids})

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc)
	return router
}

func TestInspectUpload(t *testing.T) {
	router := newRouter(t)

	rec := postForm(t, router, "/datasets/inspect?summary=true", "data.csv", salesCSV, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d %s", rec.Code, rec.Body.String())
	}

	var env envelope[InspectResponse]
	decode(t, rec, &env)

	if env.Message != "dataset loaded" || env.Data.Rows != 3 || len(env.Data.Columns) != 2 {
		t.Fatalf("unexpected response: %+v", env)
	}
	if len(env.Data.Preview) != 3 || len(env.Data.Summary) != 2 {
		t.Fatalf("unexpected preview or summary: %+v", env.Data)
	}
}

func TestValuesUpload(t *testing.T) {
	router := newRouter(t)

	rec := postForm(t, router, "/datasets/values", "data.csv", salesCSV, map[string]string{"column": "city"})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d %s", rec.Code, rec.Body.String())
	}

	var env envelope[ValuesResponse]
	decode(t, rec, &env)
	if len(env.Data.Values) != 2 || env.Data.Values[0] != "NYC" {
		t.Fatalf("unexpected values: %+v", env.Data)
	}

	rec = postForm(t, router, "/datasets/values", "data.csv", salesCSV, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("missing column: status %d", rec.Code)
	}
}

func TestChartJSON(t *testing.T) {
	router := newRouter(t)

	rec := postForm(t, router, "/charts", "data.csv", salesCSV, map[string]string{
		"chart_type": "Bar Chart",
		"x":          "city",
		"y":          "sales",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d %s", rec.Code, rec.Body.String())
	}

	var env envelope[entity.Chart]
	decode(t, rec, &env)
	if env.Data.Title != "city vs sales" || len(env.Data.Bars) != 2 || env.Data.ID == 0 {
		t.Fatalf("unexpected chart: %+v", env.Data)
	}
	if env.Meta["rows"] != float64(3) {
		t.Fatalf("unexpected meta: %v", env.Meta)
	}
}

func TestChartFilterAndEmptyResult(t *testing.T) {
	router := newRouter(t)

	tests := map[string]int{"NYC": 2, "Boston": 0}
	for value, rows := range tests {
		rec := postForm(t, router, "/charts", "data.csv", salesCSV, map[string]string{
			"chart_type":    "scatter",
			"x":             "city",
			"y":             "sales",
			"filter_column": "city",
			"filter_value":  value,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d %s", value, rec.Code, rec.Body.String())
		}

		var env envelope[entity.Chart]
		decode(t, rec, &env)
		if env.Data.Rows != rows || len(env.Data.Points) != rows {
			t.Fatalf("%s: rows = %d, want %d", value, env.Data.Rows, rows)
		}
	}
}

func TestValuesFilterRoundTrip(t *testing.T) {
	router := newRouter(t)
	padded := "city,sales\n NYC,10\nLA,20\n NYC,30\n"

	rec := postForm(t, router, "/datasets/values", "data.csv", padded, map[string]string{"column": "city"})
	if rec.Code != http.StatusOK {
		t.Fatalf("values: status %d %s", rec.Code, rec.Body.String())
	}
	var values envelope[ValuesResponse]
	decode(t, rec, &values)
	if len(values.Data.Values) != 2 || values.Data.Values[0] != " NYC" {
		t.Fatalf("values must keep cells as stored: %q", values.Data.Values)
	}

	want := map[string]int{" NYC": 2, "LA": 1}
	for _, v := range values.Data.Values {
		value := v.(string)
		rec := postForm(t, router, "/charts", "data.csv", padded, map[string]string{
			"chart_type":    "bar",
			"x":             "city",
			"y":             "sales",
			"filter_column": "city",
			"filter_value":  value,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("%q: status %d %s", value, rec.Code, rec.Body.String())
		}

		var env envelope[entity.Chart]
		decode(t, rec, &env)
		if env.Data.Rows != want[value] {
			t.Fatalf("%q: rows = %d, want %d", value, env.Data.Rows, want[value])
		}
	}
}

func TestChartImage(t *testing.T) {
	router := newRouter(t)

	rec := postForm(t, router, "/charts", "data.csv", salesCSV, map[string]string{
		"chart_type": "histogram",
		"x":          "sales",
		"format":     "png",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Fatalf("content type = %q", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("body is not a png")
	}
}

func TestChartRawBody(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/charts?file_name=data.csv&chart_type=box&x=city&y=sales", strings.NewReader(salesCSV))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d %s", rec.Code, rec.Body.String())
	}

	var env envelope[entity.Chart]
	decode(t, rec, &env)
	if env.Data.Title != "Box Plot of sales by city" || len(env.Data.Boxes) != 2 {
		t.Fatalf("unexpected chart: %+v", env.Data)
	}
}

func TestChartErrors(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name   string
		file   string
		fields map[string]string
		status int
		key    string
		value  string
	}{
		{
			name:   "unsupported format",
			file:   "report.txt",
			fields: map[string]string{"chart_type": "bar", "x": "city", "y": "sales"},
			status: http.StatusUnsupportedMediaType,
			key:    "extension",
			value:  "txt",
		},
		{
			name:   "unknown column",
			file:   "data.csv",
			fields: map[string]string{"chart_type": "bar", "x": "region", "y": "sales"},
			status: http.StatusUnprocessableEntity,
			key:    "column",
			value:  "region",
		},
		{
			name:   "bad chart type",
			file:   "data.csv",
			fields: map[string]string{"chart_type": "pie", "x": "city", "y": "sales"},
			status: http.StatusUnprocessableEntity,
			key:    "detail",
			value:  "invalid chart_type",
		},
		{
			name:   "missing y",
			file:   "data.csv",
			fields: map[string]string{"chart_type": "line", "x": "city"},
			status: http.StatusUnprocessableEntity,
			key:    "detail",
			value:  "y is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(t, router, "/charts", tt.file, salesCSV, tt.fields)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}

			var env errorEnvelope
			decode(t, rec, &env)
			if env.Error[tt.key] != tt.value {
				t.Fatalf("error[%s] = %q, want %q", tt.key, env.Error[tt.key], tt.value)
			}
		})
	}
}

func TestChartTypes(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/charts/types", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var env envelope[[]ChartType]
	decode(t, rec, &env)
	if len(env.Data) != 5 || env.Data[3].Label != "Histogram" || env.Data[3].NeedY {
		t.Fatalf("unexpected chart types: %+v", env.Data)
	}
}

func postForm(t *testing.T, router http.Handler, path, fileName, content string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
