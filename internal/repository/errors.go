package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when a write targets a task that does not exist
	ErrTaskNotFound = errors.New("task not found")

	// ErrBoardExists is returned when a second board is provisioned for the same owner
	ErrBoardExists = errors.New("board already exists for owner")
)
