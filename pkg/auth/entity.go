package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin-area account. The public portfolio needs no account; users
// exist only to gate editing and the paid AI operations.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
