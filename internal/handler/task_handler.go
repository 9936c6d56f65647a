package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskLifecycle is the slice of the task service the HTTP layer consumes.
type TaskLifecycle interface {
	CreateTask(ctx context.Context, userID uuid.UUID, title string, description *string) (*model.Task, error)
	MoveTask(ctx context.Context, userID, taskID, targetColumnID uuid.UUID, position *int) (*model.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, title, description *string) (*model.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) (*model.Task, error)
	ClearDone(ctx context.Context, userID uuid.UUID) (int64, error)
	GetBoard(ctx context.Context, userID uuid.UUID) (*service.BoardView, error)
}

type TaskHandler struct {
	tasks TaskLifecycle
}

func NewTaskHandler(tasks TaskLifecycle) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// CreateTaskRequest is the payload for creating a task; it always lands in TODO.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

// MoveTaskRequest is the payload for relocating a task. Position is optional;
// absent means append to the end of the target column.
type MoveTaskRequest struct {
	ColumnID string `json:"column_id" binding:"required,uuid"`
	Position *int   `json:"position"`
}

// UpdateTaskRequest carries the updatable fields. Anything else (column,
// position, color) is rejected at this boundary.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// TaskResponse is the wire shape of a task.
type TaskResponse struct {
	ID          string  `json:"id"`
	BoardID     string  `json:"board_id"`
	ColumnID    string  `json:"column_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Position    int     `json:"position"`
	Color       string  `json:"color"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func toTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		BoardID:     task.BoardID.String(),
		ColumnID:    task.ColumnID.String(),
		Title:       task.Title,
		Description: task.Description,
		Position:    task.Position,
		Color:       string(task.Color),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

// currentUserID pulls the authenticated user id the middleware stored on the
// context. The bool result is false when the route is misconfigured.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return uuid.Nil, false
	}
	return userID, true
}

// Create creates a new task in the caller's TODO column
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Move relocates a task to another column of the caller's board
func (h *TaskHandler) Move(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	columnID, err := uuid.Parse(req.ColumnID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
		return
	}

	task, err := h.tasks.MoveTask(c.Request.Context(), userID, taskID, columnID, req.Position)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update applies a partial update to a task's title and/or description.
// Unknown fields fail the request so column/position/color cannot be smuggled
// through this endpoint.
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req UpdateTaskRequest
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), userID, taskID, req.Title, req.Description)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete soft-deletes one task and returns its last state for confirmation
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	task, err := h.tasks.DeleteTask(c.Request.Context(), userID, taskID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// ClearDone soft-deletes every active task in the caller's DONE column
func (h *TaskHandler) ClearDone(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.tasks.ClearDone(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed_count": count})
}
