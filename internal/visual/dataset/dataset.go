package dataset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tobgu/qframe"
	"github.com/tobgu/qframe/types"
)

// ErrColumnNotFound is returned when a named column is absent.
var ErrColumnNotFound = errors.New("column not found")

// Kind is the scalar kind shared by every cell of a column.
type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindString Kind = "string"
)

// Numeric reports whether values of the kind are numbers.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Dataset is an immutable table of named, equal-length columns.
type Dataset struct {
	qf qframe.QFrame
}

// New wraps a frame, surfacing any error the frame carries.
func New(qf qframe.QFrame) (*Dataset, error) {
	if qf.Err != nil {
		return nil, qf.Err
	}
	return &Dataset{qf: qf}, nil
}

func (d *Dataset) Len() int {
	return d.qf.Len()
}

// Columns returns the column names in their original order.
func (d *Dataset) Columns() []string {
	return d.qf.ColumnNames()
}

func (d *Dataset) Has(column string) bool {
	return slices.Contains(d.qf.ColumnNames(), column)
}

// Kind returns the kind of a column.
func (d *Dataset) Kind(column string) (Kind, error) {
	typ, ok := d.qf.ColumnTypeMap()[column]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	return kindOf(typ), nil
}

func kindOf(typ types.DataType) Kind {
	switch typ {
	case types.Int:
		return KindInt
	case types.Float:
		return KindFloat
	case types.Bool:
		return KindBool
	default:
		return KindString
	}
}

// Values returns the cells of a column as int, float64, bool or string.
// Null cells (NaN or infinite floats, missing strings) are nil.
func (d *Dataset) Values(column string) ([]any, error) {
	typ, ok := d.qf.ColumnTypeMap()[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	n := d.qf.Len()
	out := make([]any, n)

	switch typ {
	case types.Int:
		view, err := d.qf.IntView(column)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			out[i] = view.ItemAt(i)
		}
	case types.Float:
		view, err := d.qf.FloatView(column)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if v := view.ItemAt(i); finite(v) {
				out[i] = v
			}
		}
	case types.Bool:
		view, err := d.qf.BoolView(column)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			out[i] = view.ItemAt(i)
		}
	case types.Enum:
		view, err := d.qf.EnumView(column)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if v := view.ItemAt(i); v != nil {
				out[i] = *v
			}
		}
	default:
		view, err := d.qf.StringView(column)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			if v := view.ItemAt(i); v != nil {
				out[i] = *v
			}
		}
	}

	return out, nil
}

// Head returns up to n rows, each ordered like Columns.
func (d *Dataset) Head(n int) ([][]any, error) {
	n = max(0, min(n, d.Len()))

	cols := d.Columns()
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = make([]any, len(cols))
	}

	for j, col := range cols {
		values, err := d.Values(col)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			rows[i][j] = values[i]
		}
	}

	return rows, nil
}

// Unique returns the distinct values of a column in first-appearance order.
// Null is reported once, as nil, where it first appears.
func (d *Dataset) Unique(column string) ([]any, error) {
	values, err := d.Values(column)
	if err != nil {
		return nil, err
	}

	seen := make(map[any]struct{}, len(values))
	out := make([]any, 0)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}
