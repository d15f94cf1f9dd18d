package loader

import (
	"errors"
	"fmt"

	"github.com/shandysiswandi/govis/internal/visual/entity"
)

var (
	// ErrUnsupportedFormat matches every UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrParse matches every ParseError.
	ErrParse = errors.New("failed to parse dataset")
)

// UnsupportedFormatError names an extension the loader has no parser for.
// Ext has no leading dot and is empty for names without an extension.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q", e.Ext)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ParseError carries the parser's diagnostic for a recognised format.
type ParseError struct {
	Format entity.Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
