package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered identity. The password hash is never exposed
// in JSON; the stored email is always lower-cased.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Name         string    `json:"name,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
}
