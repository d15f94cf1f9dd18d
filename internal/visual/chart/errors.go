package chart

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumn matches every UnknownColumnError.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrUnknownChartType is returned for a chart type with no constructor.
	ErrUnknownChartType = errors.New("unknown chart type")
)

// UnknownColumnError names a selected column the dataset does not have.
type UnknownColumnError struct {
	Column string
	Role   string // x, y or filter
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown %s column %q", e.Role, e.Column)
}

func (e *UnknownColumnError) Is(target error) bool {
	return target == ErrUnknownColumn
}
