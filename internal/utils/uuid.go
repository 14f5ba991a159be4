package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque string identifiers for new accounts.
// Identifiers are UUIDv7 so they sort roughly by creation time, which keeps
// the primary-key index append-friendly.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
