package model

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// TaskColor is the card tint assigned at creation. The palette is closed and
// a task keeps its color for life.
type TaskColor string

const (
	ColorPastelYellow TaskColor = "pastel-yellow"
	ColorPastelPink   TaskColor = "pastel-pink"
	ColorPastelGreen  TaskColor = "pastel-green"
	ColorPastelBlue   TaskColor = "pastel-blue"
)

// TaskColors lists the full palette.
var TaskColors = []TaskColor{ColorPastelYellow, ColorPastelPink, ColorPastelGreen, ColorPastelBlue}

// RandomTaskColor picks one of the four colors uniformly. Every creation
// rolls independently.
func RandomTaskColor() TaskColor {
	return TaskColors[rand.IntN(len(TaskColors))]
}

// Task is a unit of work living in exactly one column of one board. BoardID
// is denormalized for filtering and must always agree with the column's
// board. Deleted tasks stay in the table with IsDeleted set; they never come
// back and never show up in reads.
type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BoardID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ColumnID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description *string
	Position    int       `gorm:"not null"`
	Color       TaskColor `gorm:"not null"`
	IsDeleted   bool      `gorm:"not null;default:false"`
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Board  Board  `gorm:"foreignKey:BoardID"`
	Column Column `gorm:"foreignKey:ColumnID"`
}
