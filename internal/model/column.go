package model

import (
	"github.com/google/uuid"
)

// ColumnSlug identifies one of the three fixed workflow stages. The set is
// closed: boards are provisioned with exactly these columns and no others.
type ColumnSlug string

const (
	SlugTodo       ColumnSlug = "TODO"
	SlugInProgress ColumnSlug = "IN_PROGRESS"
	SlugDone       ColumnSlug = "DONE"
)

// ColumnSlugs lists the fixed slugs in board order.
var ColumnSlugs = []ColumnSlug{SlugTodo, SlugInProgress, SlugDone}

// Valid reports whether s is one of the three known slugs.
func (s ColumnSlug) Valid() bool {
	switch s {
	case SlugTodo, SlugInProgress, SlugDone:
		return true
	}
	return false
}

// Column is a workflow stage belonging to a board. Columns are created once,
// when the board is provisioned, and never renamed, reordered or removed.
type Column struct {
	ID       uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BoardID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Slug     ColumnSlug `gorm:"not null"`
	Title    string     `gorm:"not null"`
	Position int        `gorm:"not null"`

	Board Board `gorm:"foreignKey:BoardID"`
}
