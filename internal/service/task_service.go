package service

import (
	"context"
	"strings"

	"taskboard/internal/model"

	"github.com/google/uuid"
)

// BoardStore resolves a user's single board.
type BoardStore interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Board, error)
}

// ColumnStore is the read-only registry of a board's three fixed columns.
type ColumnStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Column, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.Column, error)
	GetBySlug(ctx context.Context, boardID uuid.UUID, slug model.ColumnSlug) (*model.Column, error)
}

// TaskStore persists tasks. Every method is scoped by explicit ids; there is
// no in-process caching of its state anywhere above it.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	NextPosition(ctx context.Context, columnID uuid.UUID) (int, error)
	FindActive(ctx context.Context, taskID, ownerID uuid.UUID) (*model.Task, error)
	GetActiveByColumnID(ctx context.Context, columnID uuid.UUID) ([]model.Task, error)
	UpdateFields(ctx context.Context, taskID uuid.UUID, title, description *string) (*model.Task, error)
	Relocate(ctx context.Context, taskID, columnID uuid.UUID, position int) (*model.Task, error)
	SoftDelete(ctx context.Context, taskID uuid.UUID) error
	SoftDeleteByColumn(ctx context.Context, boardID, columnID uuid.UUID) (int64, error)
}

// TaskService implements the task lifecycle: creation into TODO, moves
// between the fixed columns, partial field updates, single soft deletion and
// bulk clearing of DONE. All ownership checks funnel through
// TaskStore.FindActive.
type TaskService struct {
	boards  BoardStore
	columns ColumnStore
	tasks   TaskStore
}

func NewTaskService(boards BoardStore, columns ColumnStore, tasks TaskStore) *TaskService {
	return &TaskService{boards: boards, columns: columns, tasks: tasks}
}

// resolveBoard finds the caller's board or reports NotFound. Registration
// guarantees the board exists, but a missing one is still a recoverable
// error here, not an assumption.
func (s *TaskService) resolveBoard(ctx context.Context, userID uuid.UUID) (*model.Board, error) {
	board, err := s.boards.GetByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrNotFound("board not found")
	}
	return board, nil
}

func (s *TaskService) resolveColumnBySlug(ctx context.Context, boardID uuid.UUID, slug model.ColumnSlug) (*model.Column, error) {
	column, err := s.columns.GetBySlug(ctx, boardID, slug)
	if err != nil {
		return nil, err
	}
	if column == nil {
		return nil, ErrNotFound("column not found")
	}
	return column, nil
}

// CreateTask adds a new task to the TODO column of the caller's board. The
// position appends to the end of the column and the color is rolled once,
// uniformly, for the life of the task.
func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, title string, description *string) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrValidation("title must not be empty")
	}

	board, err := s.resolveBoard(ctx, userID)
	if err != nil {
		return nil, err
	}
	todo, err := s.resolveColumnBySlug(ctx, board.ID, model.SlugTodo)
	if err != nil {
		return nil, err
	}

	position, err := s.tasks.NextPosition(ctx, todo.ID)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		BoardID:     board.ID,
		ColumnID:    todo.ID,
		Title:       title,
		Description: description,
		Position:    position,
		Color:       model.RandomTaskColor(),
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// MoveTask relocates a task to a target column of the same board. A missing
// or non-positive position means append-to-end; that also makes a move to
// the task's current column a reorder to the end of that column.
func (s *TaskService) MoveTask(ctx context.Context, userID, taskID, targetColumnID uuid.UUID, position *int) (*model.Task, error) {
	task, err := s.tasks.FindActive(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound("task not found")
	}

	column, err := s.columns.GetByID(ctx, targetColumnID)
	if err != nil {
		return nil, err
	}
	if column == nil {
		return nil, ErrNotFound("column not found")
	}
	if column.BoardID != task.BoardID {
		return nil, ErrForbidden("column belongs to a different board")
	}

	newPosition := 0
	if position != nil && *position > 0 {
		newPosition = *position
	} else {
		newPosition, err = s.tasks.NextPosition(ctx, column.ID)
		if err != nil {
			return nil, err
		}
	}

	return s.tasks.Relocate(ctx, task.ID, column.ID, newPosition)
}

// UpdateTask applies a partial update to title and/or description. Nil means
// "leave unchanged"; at least one field must be given. Column, position and
// color are never touched here.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, title, description *string) (*model.Task, error) {
	if title == nil && description == nil {
		return nil, ErrValidation("at least one of title or description is required")
	}
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, ErrValidation("title must not be empty")
		}
		title = &trimmed
	}

	task, err := s.tasks.FindActive(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound("task not found")
	}

	return s.tasks.UpdateFields(ctx, task.ID, title, description)
}

// DeleteTask soft-deletes one task and returns its last active state for the
// confirmation payload. A second call on the same id finds nothing active
// and reports NotFound; single deletion is deliberately not idempotent.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) (*model.Task, error) {
	task, err := s.tasks.FindActive(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound("task not found")
	}

	if err := s.tasks.SoftDelete(ctx, task.ID); err != nil {
		return nil, err
	}
	return task, nil
}

// ClearDone soft-deletes every active task in the caller's DONE column and
// returns the count. Clearing an empty column returns 0; the operation is
// idempotent.
func (s *TaskService) ClearDone(ctx context.Context, userID uuid.UUID) (int64, error) {
	board, err := s.resolveBoard(ctx, userID)
	if err != nil {
		return 0, err
	}
	done, err := s.resolveColumnBySlug(ctx, board.ID, model.SlugDone)
	if err != nil {
		return 0, err
	}
	return s.tasks.SoftDeleteByColumn(ctx, board.ID, done.ID)
}

// ColumnView is one column with its active tasks in position order.
type ColumnView struct {
	Column model.Column
	Tasks  []model.Task
}

// BoardView is the full read aggregate: the board and its three columns with
// their active tasks.
type BoardView struct {
	Board   model.Board
	Columns []ColumnView
}

// GetBoard builds the read aggregate for the caller's board. Every lookup is
// fresh; deleted tasks never appear.
func (s *TaskService) GetBoard(ctx context.Context, userID uuid.UUID) (*BoardView, error) {
	board, err := s.resolveBoard(ctx, userID)
	if err != nil {
		return nil, err
	}
	columns, err := s.columns.GetByBoardID(ctx, board.ID)
	if err != nil {
		return nil, err
	}

	view := &BoardView{Board: *board, Columns: make([]ColumnView, 0, len(columns))}
	for _, column := range columns {
		tasks, err := s.tasks.GetActiveByColumnID(ctx, column.ID)
		if err != nil {
			return nil, err
		}
		view.Columns = append(view.Columns, ColumnView{Column: column, Tasks: tasks})
	}
	return view, nil
}
