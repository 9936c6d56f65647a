package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultBoardName is the display name given to the board provisioned at
// registration time.
const DefaultBoardName = "Personal board"

// Board is the single per-user container for columns and tasks. Exactly one
// board exists per owner; the uniqueness is enforced by the schema.
type Board struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner User `gorm:"foreignKey:OwnerID"`
}
