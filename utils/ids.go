package utils

import (
	"github.com/google/uuid"
)

// NewID generates a new entity id
func NewID() string {
	return uuid.NewString()
}
