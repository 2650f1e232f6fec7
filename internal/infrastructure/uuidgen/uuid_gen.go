package uuidgen

import (
	"github.com/google/uuid"

	"stayhub/internal/domain/contract"
)

// Generator implements contract.IUUIDGenerator. Ids are random UUIDs
// rather than timestamps, which could collide when two records are
// created within the same millisecond.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

// Ensure Generator implements the contract.IUUIDGenerator interface
var _ contract.IUUIDGenerator = (*Generator)(nil)
