package pkg

import "github.com/google/uuid"

// GenerateSessionID - generates a unique identifier for one run of the application.
func GenerateSessionID() string {
	return uuid.NewString()
}
