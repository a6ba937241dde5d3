package entity

import (
	"time"
)

// User is the aggregate root for the identity store.
// Password holds a bcrypt hash, never plain text.
type User struct {
	ID             string
	Name           string
	Email          string
	Password       string
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
