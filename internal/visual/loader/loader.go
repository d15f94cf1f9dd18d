package loader

import (
	"path/filepath"
	"strings"

	"github.com/shandysiswandi/govis/internal/visual/dataset"
	"github.com/shandysiswandi/govis/internal/visual/entity"
	"github.com/tobgu/qframe"
)

// FormatOf selects the format from the case-insensitive suffix of name.
func FormatOf(name string) (entity.Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")

	switch ext {
	case "csv":
		return entity.FormatCSV, nil
	case "xlsx", "xls":
		return entity.FormatExcel, nil
	case "json":
		return entity.FormatJSON, nil
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}

// Load parses an uploaded file into a Dataset using the parser selected by
// its extension. Parser failures are wrapped in a ParseError.
func Load(file entity.UploadedFile) (*dataset.Dataset, error) {
	format, err := FormatOf(file.Name)
	if err != nil {
		return nil, err
	}

	var qf qframe.QFrame
	switch format {
	case entity.FormatCSV:
		qf, err = readCSV(file.Content)
	case entity.FormatJSON:
		qf, err = readJSON(file.Content)
	case entity.FormatExcel:
		qf, err = readExcel(file.Content)
	}
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	ds, err := dataset.New(qf)
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}
	return ds, nil
}
