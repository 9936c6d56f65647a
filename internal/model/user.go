package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the account a board traces back to. Created by the registration
// flow; immutable afterwards from the board core's point of view.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	Name           string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
