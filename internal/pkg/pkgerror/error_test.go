package pkgerror

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestTypeString(t *testing.T) {
	tests := map[Type]string{
		TypeValidation: "ERROR_TYPE_VALIDATION",
		TypeBusiness:   "ERROR_TYPE_BUSINESS",
		TypeServer:     "ERROR_TYPE_SERVER",
		Type(99):       "ERROR_TYPE_UNKNOWN",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Fatalf("Type(%d).String() = %q, want %q", typ, got, want)
		}
	}
}

func TestCodeString(t *testing.T) {
	tests := map[Code]string{
		CodeInvalidFormat:    "ERROR_CODE_INVALID_FORMAT",
		CodeUnsupportedMedia: "ERROR_CODE_UNSUPPORTED_MEDIA",
		CodeTooLarge:         "ERROR_CODE_TOO_LARGE",
		CodeInternal:         "ERROR_CODE_INTERNAL",
		Code(99):             "ERROR_CODE_INTERNAL",
	}
	for code, want := range tests {
		if got := code.String(); got != want {
			t.Fatalf("Code(%d).String() = %q, want %q", code, got, want)
		}
	}
}

func TestErrorHelpers(t *testing.T) {
	root := errors.New("boom")
	err := NewServer(root)
	gerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected wrapped error")
	}
	if got := gerr.Msg(); got != "Internal server error" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if got := gerr.Type(); got != TypeServer {
		t.Fatalf("unexpected type: %v", got)
	}
	if got := gerr.Error(); got != "boom" {
		t.Fatalf("unexpected error string: %q", got)
	}
	if got := gerr.StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestUploadErrorStatusCodes(t *testing.T) {
	root := errors.New(`unsupported file format "txt"`)

	media := NewUnsupportedMedia(root)
	if got := media.StatusCode(); got != http.StatusUnsupportedMediaType {
		t.Fatalf("unsupported media status = %d", got)
	}
	if !errors.Is(media, root) {
		t.Fatalf("expected unsupported media to wrap root error")
	}

	large := NewTooLarge(1024).(*Error)
	if got := large.StatusCode(); got != http.StatusRequestEntityTooLarge {
		t.Fatalf("too large status = %d", got)
	}
	if got := large.Error(); got != "upload exceeds 1024 bytes" {
		t.Fatalf("too large message = %q", got)
	}

	unprocessable := NewUnprocessable(root, "cannot parse dataset")
	if got := unprocessable.StatusCode(); got != http.StatusUnprocessableEntity {
		t.Fatalf("unprocessable status = %d", got)
	}
	if got := unprocessable.Msg(); got != "cannot parse dataset" {
		t.Fatalf("unprocessable msg = %q", got)
	}
}

func TestErrorFields(t *testing.T) {
	err := NewUnprocessable(nil, "unknown column").WithField("column", "price")

	fields := err.Fields()
	if fields["column"] != "price" {
		t.Fatalf("expected column field, got %v", fields)
	}

	fields["column"] = "mutated"
	if got := err.Fields()["column"]; got != "price" {
		t.Fatalf("Fields() must return a copy, got %q", got)
	}

	if got := NewUnprocessable(nil, "x").Fields(); got != nil {
		t.Fatalf("expected nil fields, got %v", got)
	}
}

func TestErrorFallbackMessages(t *testing.T) {
	if got := new(nil, "", TypeValidation, CodeInternal).Error(); got != "Validation violation" {
		t.Fatalf("unexpected validation fallback: %q", got)
	}
	if got := new(nil, "", TypeBusiness, CodeInternal).Error(); got != "Logical business not meet with requirement" {
		t.Fatalf("unexpected business fallback: %q", got)
	}
	if got := new(nil, "", TypeServer, CodeInternal).Error(); got != "Internal error" {
		t.Fatalf("unexpected server fallback: %q", got)
	}
}

func TestErrorStringIncludesDetails(t *testing.T) {
	err := NewUnprocessable(nil, "message").WithField("column", "sales")
	str := err.String()
	for _, want := range []string{"ERROR_TYPE_VALIDATION", "ERROR_CODE_INVALID_INPUT", "message", "sales"} {
		if !strings.Contains(str, want) {
			t.Fatalf("expected %q in string: %q", want, str)
		}
	}
}
