package pkguid

import "github.com/google/uuid"

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}

// UUID generates the correlation IDs stamped on requests. IDs are version 7
// so they sort by arrival in the logs; a random version 4 ID stands in when
// the clock source fails.
type UUID struct {
	v7 func() (uuid.UUID, error)
}

func NewUUID() *UUID {
	return &UUID{v7: uuid.NewV7}
}

func (u *UUID) Generate() string {
	if id, err := u.v7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
