package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/tobgu/qframe"
	"github.com/tobgu/qframe/config/newqf"
)

var errJSONShape = errors.New("json must be an array of records or an object of columns")

// readJSON accepts records ([{"a":1}, ...]) or columns ({"a":[1, ...]}).
// Records may leave keys out: columns are the union of keys in
// first-appearance order and absent cells are null.
func readJSON(content []byte) (qframe.QFrame, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return qframe.QFrame{}, err
	}

	var (
		names   []string
		columns map[string][]any
	)
	switch tok {
	case json.Delim('['):
		names, columns, err = decodeRecords(dec)
	case json.Delim('{'):
		names, columns, err = decodeColumns(dec)
	default:
		return qframe.QFrame{}, errJSONShape
	}
	if err != nil {
		return qframe.QFrame{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return qframe.QFrame{}, errors.New("unexpected data after the json document")
	}

	data := make(map[string]any, len(names))
	for _, name := range names {
		data[name] = jsonColumn(columns[name])
	}
	if len(names) == 0 {
		return qframe.New(data), nil
	}
	return qframe.New(data, newqf.ColumnOrder(names...)), nil
}

func decodeRecords(dec *json.Decoder) ([]string, map[string][]any, error) {
	var (
		names   []string
		columns = make(map[string][]any)
		rows    int
	)

	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", rows, err)
		}
		for dec.More() {
			key, err := objectKey(dec)
			if err != nil {
				return nil, nil, err
			}
			var v any
			if err := dec.Decode(&v); err != nil {
				return nil, nil, err
			}

			col, ok := columns[key]
			if !ok {
				names = append(names, key)
				col = make([]any, rows, rows+1)
			}
			for len(col) <= rows {
				col = append(col, nil)
			}
			col[rows] = v
			columns[key] = col
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, nil, err
		}
		rows++
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, nil, err
	}

	for name, col := range columns {
		for len(col) < rows {
			col = append(col, nil)
		}
		columns[name] = col
	}
	return names, columns, nil
}

func decodeColumns(dec *json.Decoder) ([]string, map[string][]any, error) {
	var (
		names   []string
		columns = make(map[string][]any)
		rows    = -1
	)

	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return nil, nil, err
		}
		var values []any
		if err := dec.Decode(&values); err != nil {
			return nil, nil, fmt.Errorf("column %q: %w", key, err)
		}
		if rows >= 0 && len(values) != rows {
			return nil, nil, fmt.Errorf("column %q has %d values, want %d", key, len(values), rows)
		}
		rows = len(values)

		if _, ok := columns[key]; !ok {
			names = append(names, key)
		}
		columns[key] = values
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, nil, err
	}
	return names, columns, nil
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected %v, want an object key", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("unexpected %v, want %q", tok, want)
	}
	return nil
}

// jsonColumn types decoded cells: int when every cell is a whole number,
// float (NaN for null) when every present cell is a number, bool when
// every cell is a bool, otherwise string. Nested arrays and objects are
// kept as their compact json text.
func jsonColumn(values []any) any {
	isInt, isFloat, isBool := true, true, true
	present, hasNull := 0, false
	for _, v := range values {
		switch n := v.(type) {
		case nil:
			hasNull = true
			continue
		case json.Number:
			isBool = false
			if _, err := n.Int64(); err != nil {
				isInt = false
			}
			if _, err := n.Float64(); err != nil {
				isFloat = false
			}
		case bool:
			isInt, isFloat = false, false
		default:
			isInt, isFloat, isBool = false, false, false
		}
		present++
	}

	switch {
	case present == 0:
	case isInt && !hasNull:
		out := make([]int, len(values))
		for i, v := range values {
			n, _ := v.(json.Number).Int64()
			out[i] = int(n)
		}
		return out
	case isFloat:
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = math.NaN()
			if n, ok := v.(json.Number); ok {
				out[i], _ = n.Float64()
			}
		}
		return out
	case isBool && !hasNull:
		out := make([]bool, len(values))
		for i, v := range values {
			out[i] = v.(bool)
		}
		return out
	}

	out := make([]*string, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		s := jsonText(v)
		out[i] = &s
	}
	return out
}

func jsonText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
