package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/tobgu/qframe"
	qcsv "github.com/tobgu/qframe/config/csv"
)

var errNoHeader = errors.New("csv has no header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV names the header row with the spreadsheet rules, so blank and
// repeated names load, and hands the body to qframe under those names.
// Empty cells are null and empty lines are skipped.
func readCSV(content []byte) (qframe.QFrame, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return qframe.QFrame{}, errNoHeader
	}
	if err != nil {
		return qframe.QFrame{}, err
	}

	body := content[r.InputOffset():]
	return qframe.ReadCSV(bytes.NewReader(body),
		qcsv.Headers(headerNames(header, len(header))),
		qcsv.EmptyNull(true),
		qcsv.IgnoreEmptyLines(true),
	), nil
}
