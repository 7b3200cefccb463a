package utils

import "github.com/google/uuid"

// NewID returns an opaque, globally unique identifier for an entity.
func NewID() string {
	return uuid.New().String()
}
