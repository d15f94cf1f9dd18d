package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tobgu/qframe"
	"github.com/tobgu/qframe/types"
)

// Where keeps the rows whose cell in column equals value. A nil value keeps
// null cells. Values that cannot represent a cell of the column's kind
// match nothing; an empty result is not an error.
func (d *Dataset) Where(column string, value any) (*Dataset, error) {
	typ, ok := d.qf.ColumnTypeMap()[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	out := d.qf.Filter(qframe.Filter{Column: column, Comparator: comparator(typ, value)})
	if out.Err != nil {
		return nil, fmt.Errorf("filter %q: %w", column, out.Err)
	}
	return &Dataset{qf: out}, nil
}

func comparator(typ types.DataType, value any) any {
	switch typ {
	case types.Int:
		want, ok := asInt(value)
		return func(v int) bool { return ok && v == want }
	case types.Float:
		if value == nil {
			return func(v float64) bool { return !finite(v) }
		}
		want, ok := asFloat(value)
		return func(v float64) bool { return ok && v == want }
	case types.Bool:
		want, ok := asBool(value)
		return func(v bool) bool { return ok && v == want }
	default:
		if value == nil {
			return func(v *string) bool { return v == nil }
		}
		want, ok := value.(string)
		return func(v *string) bool { return ok && v != nil && *v == want }
	}
}

// ParseValue coerces raw text to the kind of column. ok is false when the
// text cannot represent a cell of that kind. Text for string columns is
// kept byte for byte so any value listed by Unique selects its rows.
func (d *Dataset) ParseValue(column, raw string) (value any, ok bool, err error) {
	kind, err := d.Kind(column)
	if err != nil {
		return nil, false, err
	}

	text := strings.TrimSpace(raw)
	switch kind {
	case KindInt:
		v, perr := strconv.Atoi(text)
		if perr != nil {
			// "3.0" still names the integer 3.
			f, ferr := strconv.ParseFloat(text, 64)
			if ferr != nil || f != math.Trunc(f) || !finite(f) {
				return nil, false, nil
			}
			return int(f), true, nil
		}
		return v, true, nil
	case KindFloat:
		v, perr := strconv.ParseFloat(text, 64)
		if perr != nil || !finite(v) {
			return nil, false, nil
		}
		return v, true, nil
	case KindBool:
		v, perr := strconv.ParseBool(text)
		if perr != nil {
			return nil, false, nil
		}
		return v, true, nil
	default:
		return raw, true, nil
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if finite(n) && n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, finite(n)
	case float32:
		return float64(n), finite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// Number coerces a cell for numeric aggregation. Numbers convert directly,
// strings when they parse as floats and bools as 0 or 1. NaN and the
// infinities are not numbers here.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, finite(n)
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || !finite(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
