package utils

import "github.com/google/uuid"

// IDGenerator issues journal record identifiers. Version 7 UUIDs are used
// so that ids sort by creation time.
type IDGenerator struct{}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NewID returns a UUIDv7 string, or a random UUIDv4 if the clock source
// fails.
func (g *IDGenerator) NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
