package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs, e.g. visitor ids for the preference cookie.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator mints random (v4) uuids.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// Valid reports whether raw is a uuid and returns its canonical form.
func Valid(raw string) (string, bool) {
	v, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return v.String(), true
}
