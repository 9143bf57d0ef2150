package system

import (
	"github.com/google/uuid"

	"github.com/minseop-dev/userboard/internal/domain/port"
)

// UUIDGenerator produces random UUIDv4 strings as certification codes.
type UUIDGenerator struct{}

func (UUIDGenerator) Random() string {
	return uuid.NewString()
}

var _ port.IDGenerator = UUIDGenerator{}
