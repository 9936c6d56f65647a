package handler

import (
	"net/http"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	tasks TaskLifecycle
}

func NewBoardHandler(tasks TaskLifecycle) *BoardHandler {
	return &BoardHandler{tasks: tasks}
}

type BoardResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Columns []ColumnResponse `json:"columns"`
}

type ColumnResponse struct {
	ID       string         `json:"id"`
	Slug     string         `json:"slug"`
	Title    string         `json:"title"`
	Position int            `json:"position"`
	Tasks    []TaskResponse `json:"tasks"`
}

func toBoardResponse(view *service.BoardView) BoardResponse {
	resp := BoardResponse{
		ID:      view.Board.ID.String(),
		Name:    view.Board.Name,
		Columns: make([]ColumnResponse, 0, len(view.Columns)),
	}
	for _, cv := range view.Columns {
		column := ColumnResponse{
			ID:       cv.Column.ID.String(),
			Slug:     string(cv.Column.Slug),
			Title:    cv.Column.Title,
			Position: cv.Column.Position,
			Tasks:    make([]TaskResponse, 0, len(cv.Tasks)),
		}
		for i := range cv.Tasks {
			column.Tasks = append(column.Tasks, toTaskResponse(&cv.Tasks[i]))
		}
		resp.Columns = append(resp.Columns, column)
	}
	return resp
}

// Get returns the caller's board with its columns and active tasks
func (h *BoardHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.tasks.GetBoard(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBoardResponse(view))
}
