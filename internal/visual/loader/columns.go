package loader

import (
	"math"
	"strconv"
	"strings"

	"github.com/tobgu/qframe"
	"github.com/tobgu/qframe/config/newqf"
)

// frameFromRows turns spreadsheet rows, header first, into a frame.
// Blank rows are dropped and short rows are padded with blanks.
func frameFromRows(rows [][]string) qframe.QFrame {
	for len(rows) > 0 && blank(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return qframe.New(map[string]any{})
	}

	body := make([][]string, 0, len(rows)-1)
	width := len(rows[0])
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		body = append(body, row)
		width = max(width, len(row))
	}

	names := headerNames(rows[0], width)
	data := make(map[string]any, width)
	for j, name := range names {
		cells := make([]string, len(body))
		for i, row := range body {
			if j < len(row) {
				cells[i] = row[j]
			}
		}
		data[name] = inferColumn(cells)
	}

	return qframe.New(data, newqf.ColumnOrder(names...))
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// headerNames fills blank headers with "Unnamed: i" and suffixes repeated
// names with ".1", ".2" and so on.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	taken := make(map[string]struct{}, width)
	for i := range names {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		names[i] = name
	}

	counts := make(map[string]int, width)
	for _, name := range names {
		taken[name] = struct{}{}
	}
	for i, name := range names {
		n := counts[name]
		counts[name] = n + 1
		if n == 0 {
			continue
		}
		candidate := name + "." + strconv.Itoa(n)
		for {
			if _, ok := taken[candidate]; !ok {
				break
			}
			n++
			candidate = name + "." + strconv.Itoa(n)
		}
		counts[name] = n + 1
		taken[candidate] = struct{}{}
		names[i] = candidate
	}

	return names
}

// inferColumn picks the narrowest kind that holds every non-blank cell:
// int, then float, then bool, then string. Blank cells turn an int column
// into float (NaN) and are null in string columns. Numbers and bools are
// read from the trimmed text; strings keep their cell text as is.
func inferColumn(raw []string) any {
	cells := make([]string, len(raw))
	for i, c := range raw {
		cells[i] = strings.TrimSpace(c)
	}

	hasBlank := false
	isInt, isFloat, isBool := true, true, true
	for _, c := range cells {
		if c == "" {
			hasBlank = true
			continue
		}
		if isInt {
			if _, err := strconv.Atoi(c); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(c, 64); err != nil {
				isFloat = false
			}
		}
		if isBool {
			if _, ok := parseBool(c); !ok {
				isBool = false
			}
		}
	}

	switch {
	case isInt && !hasBlank:
		out := make([]int, len(cells))
		for i, c := range cells {
			out[i], _ = strconv.Atoi(c)
		}
		return out
	case isFloat:
		out := make([]float64, len(cells))
		for i, c := range cells {
			if c == "" {
				out[i] = math.NaN()
				continue
			}
			out[i], _ = strconv.ParseFloat(c, 64)
		}
		return out
	case isBool && !hasBlank:
		out := make([]bool, len(cells))
		for i, c := range cells {
			out[i], _ = parseBool(c)
		}
		return out
	default:
		out := make([]*string, len(cells))
		for i := range raw {
			if cells[i] != "" {
				out[i] = &raw[i]
			}
		}
		return out
	}
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
