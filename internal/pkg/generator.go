package pkg

import "github.com/google/uuid"

// GenerateNewSessionID - generates a new unique id, used for sessions and rounds.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
