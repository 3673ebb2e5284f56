package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a new unique identifier for request correlation
func GenerateRequestID() string {
	return uuid.New().String()
}
