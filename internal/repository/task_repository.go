package repository

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new active task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// NextPosition returns max(position)+1 among the active tasks of a column.
// Computed fresh on every call; deleted tasks do not count.
func (r *TaskRepository) NextPosition(ctx context.Context, columnID uuid.UUID) (int, error) {
	var maxPosition struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("COALESCE(MAX(position), 0) as max").
		Where("column_id = ? AND is_deleted = ?", columnID, false).
		Scan(&maxPosition).Error
	if err != nil {
		return 0, err
	}
	return maxPosition.Max + 1, nil
}

// FindActive retrieves a task only if it is not deleted and its board belongs
// to ownerID. This single joined lookup is the authorization checkpoint for
// every mutation: a task that exists but is owned by someone else looks
// exactly like a task that does not exist.
func (r *TaskRepository) FindActive(ctx context.Context, taskID, ownerID uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Joins("JOIN boards ON boards.id = tasks.board_id").
		Where("tasks.id = ? AND boards.owner_id = ? AND tasks.is_deleted = ?", taskID, ownerID, false).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetActiveByColumnID retrieves the active tasks of a column ordered by position
func (r *TaskRepository) GetActiveByColumnID(ctx context.Context, columnID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).
		Where("column_id = ? AND is_deleted = ?", columnID, false).
		Order("position").
		Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// UpdateFields applies a partial update: a nil pointer leaves the field
// untouched. Column, position, color and the deletion flags are never
// written here.
func (r *TaskRepository) UpdateFields(ctx context.Context, taskID uuid.UUID, title, description *string) (*model.Task, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if title != nil {
		updates["title"] = *title
	}
	if description != nil {
		updates["description"] = *description
	}

	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}

	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Relocate moves a task to a column and position, refreshing updated_at
func (r *TaskRepository) Relocate(ctx context.Context, taskID, columnID uuid.UUID, position int) (*model.Task, error) {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"column_id":  columnID,
			"position":   position,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}

	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// SoftDelete marks one task deleted with a timestamp
func (r *TaskRepository) SoftDelete(ctx context.Context, taskID uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND is_deleted = ?", taskID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// SoftDeleteByColumn marks every active task of a board's column deleted and
// returns how many were affected. Zero is a normal outcome.
func (r *TaskRepository) SoftDeleteByColumn(ctx context.Context, boardID, columnID uuid.UUID) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("board_id = ? AND column_id = ? AND is_deleted = ?", boardID, columnID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
