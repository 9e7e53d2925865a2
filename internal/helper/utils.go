package helper

import "github.com/google/uuid"

// GenerateUUID creates a random 128-bit unique identifier string.
func GenerateUUID() string {
	return uuid.NewString()
}
