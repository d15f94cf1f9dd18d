package pkguid

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerate(t *testing.T) {
	tests := []struct {
		name    string
		v7      func() (uuid.UUID, error)
		version uuid.Version
	}{
		{name: "time ordered", v7: uuid.NewV7, version: 7},
		{name: "clock failure", v7: func() (uuid.UUID, error) { return uuid.Nil, errors.New("no clock") }, version: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &UUID{v7: tt.v7}
			id := gen.Generate()
			parsed, err := uuid.Parse(id)
			if err != nil {
				t.Fatalf("expected valid uuid, got %q", id)
			}
			if parsed.Version() != tt.version {
				t.Fatalf("expected version %d, got %d", tt.version, parsed.Version())
			}
		})
	}

	var _ StringID = NewUUID()
}
