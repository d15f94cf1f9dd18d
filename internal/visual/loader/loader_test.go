package loader

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"unicode/utf16"

	"github.com/shandysiswandi/govis/internal/visual/dataset"
	"github.com/shandysiswandi/govis/internal/visual/entity"
	"github.com/xuri/excelize/v2"
)

const salesCSV = "city,sales\nNYC,10\nLA,20\nNYC,30\n"

func TestFormatOf(t *testing.T) {
	tests := map[string]entity.Format{
		"data.csv":        entity.FormatCSV,
		"DATA.CSV":        entity.FormatCSV,
		"book.xlsx":       entity.FormatExcel,
		"book.xls":        entity.FormatExcel,
		"records.json":    entity.FormatJSON,
		"archive.tar.csv": entity.FormatCSV,
	}
	for name, want := range tests {
		got, err := FormatOf(name)
		if err != nil {
			t.Fatalf("FormatOf(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("FormatOf(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	tests := map[string]string{
		"report.txt":  "txt",
		"data.csv.gz": "gz",
		"README":      "",
	}
	for name, ext := range tests {
		_, err := Load(entity.UploadedFile{Name: name, Content: []byte(salesCSV)})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("Load(%q) error = %v, want ErrUnsupportedFormat", name, err)
		}

		var uerr *UnsupportedFormatError
		if !errors.As(err, &uerr) {
			t.Fatalf("expected *UnsupportedFormatError, got %T", err)
		}
		if uerr.Ext != ext {
			t.Fatalf("Ext = %q, want %q", uerr.Ext, ext)
		}
		if errors.Is(err, ErrParse) {
			t.Fatalf("unsupported format must not match ErrParse")
		}
	}
}

func TestLoadCSV(t *testing.T) {
	ds, err := Load(entity.UploadedFile{Name: "data.csv", Content: []byte(salesCSV)})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	assertShape(t, ds, []string{"city", "sales"}, 3)

	kind, _ := ds.Kind("sales")
	if kind != dataset.KindInt {
		t.Fatalf("sales kind = %s, want int", kind)
	}
}

func TestLoadJSON(t *testing.T) {
	tests := map[string]string{
		"records": `[{"city":"NYC","sales":10},{"city":"LA","sales":20},{"city":"NYC","sales":30}]`,
		"columns": "\n {\"city\":[\"NYC\",\"LA\",\"NYC\"],\"sales\":[10,20,30]}",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			ds, err := Load(entity.UploadedFile{Name: "data.json", Content: []byte(body)})
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if ds.Len() != 3 {
				t.Fatalf("Len() = %d, want 3", ds.Len())
			}
			if !ds.Has("city") || !ds.Has("sales") {
				t.Fatalf("columns = %v", ds.Columns())
			}
		})
	}
}

func TestLoadCSVDuplicateHeaders(t *testing.T) {
	body := "\ufeffa,a,,a\n1,2,3,4\n\n5,,7,8\n"
	ds, err := Load(entity.UploadedFile{Name: "dup.csv", Content: []byte(body)})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	assertShape(t, ds, []string{"a", "a.1", "Unnamed: 2", "a.2"}, 2)

	values, _ := ds.Values("a.1")
	if !reflect.DeepEqual(values, []any{2.0, nil}) {
		t.Fatalf("a.1 = %v, want [2 <nil>]", values)
	}
}

func TestLoadCSVEmptyFile(t *testing.T) {
	_, err := Load(entity.UploadedFile{Name: "empty.csv", Content: nil})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadJSONRecords(t *testing.T) {
	tests := []struct {
		name string
		body string
		cols []string
		col  string
		want []any
	}{
		{
			name: "missing key is null",
			body: `[{"a":1,"b":"x"},{"a":2}]`,
			cols: []string{"a", "b"},
			col:  "b",
			want: []any{"x", nil},
		},
		{
			name: "keys in first-appearance order",
			body: `[{"a":1},{"c":true,"a":2}]`,
			cols: []string{"a", "c"},
			col:  "c",
			want: []any{nil, "true"},
		},
		{
			name: "int with gaps becomes float",
			body: `[{"a":1},{"b":0},{"a":3}]`,
			cols: []string{"a", "b"},
			col:  "a",
			want: []any{1.0, nil, 3.0},
		},
		{
			name: "nested values are json text",
			body: `[{"a":1,"b":{"c":1}},{"a":2,"b":[1,2]}]`,
			cols: []string{"a", "b"},
			col:  "b",
			want: []any{`{"c":1}`, "[1,2]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := Load(entity.UploadedFile{Name: "records.json", Content: []byte(tt.body)})
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got := ds.Columns(); !reflect.DeepEqual(got, tt.cols) {
				t.Fatalf("Columns() = %v, want %v", got, tt.cols)
			}
			got, _ := ds.Values(tt.col)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Values(%q) = %#v, want %#v", tt.col, got, tt.want)
			}
		})
	}
}

func TestLoadJSONParseError(t *testing.T) {
	tests := map[string]string{
		"truncated":      `{"city": ["NYC"`,
		"ragged columns": `{"city": ["NYC", "LA"], "sales": [10]}`,
		"scalar record":  `[{"a":1}, 2]`,
		"scalar":         `42`,
		"trailing data":  `[{"a":1}] [{"a":2}]`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(entity.UploadedFile{Name: "data.json", Content: []byte(body)})
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}

			var perr *ParseError
			if !errors.As(err, &perr) || perr.Format != entity.FormatJSON || perr.Err == nil {
				t.Fatalf("unexpected parse error: %#v", err)
			}
		})
	}
}

func TestLoadExcel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	rows := [][]any{
		{"city", "sales", "", "sales", "open"},
		{"NYC", 10, 1.5, 1, "TRUE"},
		{"LA", 20, nil, 2, "FALSE"},
		{nil, nil, nil, nil, nil},
		{"NYC", 30, 2.5, 3, "true"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	ds, err := Load(entity.UploadedFile{Name: "Book.XLSX", Content: buf.Bytes()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	assertShape(t, ds, []string{"city", "sales", "Unnamed: 2", "sales.1", "open"}, 3)

	kinds := map[string]dataset.Kind{
		"city":       dataset.KindString,
		"sales":      dataset.KindInt,
		"Unnamed: 2": dataset.KindFloat,
		"open":       dataset.KindBool,
	}
	for col, want := range kinds {
		if got, _ := ds.Kind(col); got != want {
			t.Fatalf("Kind(%q) = %s, want %s", col, got, want)
		}
	}

	values, _ := ds.Values("Unnamed: 2")
	if !reflect.DeepEqual(values, []any{1.5, nil, 2.5}) {
		t.Fatalf("blank cell should be null, got %v", values)
	}
}

func TestLoadLegacyExcel(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "sales.xls"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	ds, err := Load(entity.UploadedFile{Name: "sales.xls", Content: content})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	assertShape(t, ds, []string{"city", "sales"}, 3)

	if kind, _ := ds.Kind("sales"); kind != dataset.KindInt {
		t.Fatalf("sales kind = %s, want int", kind)
	}
	cities, _ := ds.Values("city")
	if !reflect.DeepEqual(cities, []any{"NYC", "LA", "NYC"}) {
		t.Fatalf("city = %v", cities)
	}
	sales, _ := ds.Values("sales")
	if !reflect.DeepEqual(sales, []any{10, 20, 30}) {
		t.Fatalf("sales = %v", sales)
	}
}

func TestLoadExcelParseError(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join("testdata", "sales.xls"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	tests := map[string][]byte{
		"not a zip":     []byte("city,sales\nNYC,10\n"),
		"broken legacy": append(append([]byte{}, oleSignature...), make([]byte, 64)...),
		"encrypted":     renameStream(fixture, "EncryptedPackage"),
		"no workbook":   renameStream(fixture, "Contents"),
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(entity.UploadedFile{Name: "book.xls", Content: content})
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) || perr.Format != entity.FormatExcel {
				t.Fatalf("unexpected error %#v", err)
			}
		})
	}
}

func TestHeaderNames(t *testing.T) {
	got := headerNames([]string{"a", " ", "a", "a.1", "a"}, 6)
	want := []string{"a", "Unnamed: 1", "a.2", "a.1", "a.3", "Unnamed: 5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("headerNames = %v, want %v", got, want)
	}
}

// renameStream returns a copy of the single-stream fixture with its
// stream renamed. The stream is the second entry of directory sector 1.
func renameStream(content []byte, name string) []byte {
	out := append([]byte{}, content...)
	entry := out[2*512+128:]

	units := utf16.Encode([]rune(name + "\x00"))
	clear(entry[:64])
	for i, u := range units {
		binary.LittleEndian.PutUint16(entry[2*i:], u)
	}
	binary.LittleEndian.PutUint16(entry[64:], uint16(2*len(units)))
	return out
}

func assertShape(t *testing.T, ds *dataset.Dataset, cols []string, rows int) {
	t.Helper()
	if got := ds.Columns(); !reflect.DeepEqual(got, cols) {
		t.Fatalf("Columns() = %v, want %v", got, cols)
	}
	if got := ds.Len(); got != rows {
		t.Fatalf("Len() = %d, want %d", got, rows)
	}
}
