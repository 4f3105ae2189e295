// Package id provides unique ID generation for document keys.
package id

import "github.com/google/uuid"

// Generator defines the interface for ID generators.
type Generator interface {
	// Generate creates a new unique ID.
	Generate() string
}

// UUIDGenerator produces random UUID v4 strings.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUID v4 generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate creates a new UUID v4 string.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// NewUUID generates a new UUID v4 string.
func NewUUID() string {
	return uuid.NewString()
}
