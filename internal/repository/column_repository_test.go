package repository_test

import (
	"context"
	"testing"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestColumnRepository_GetByBoardID_Ordered(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	columnRepo := repository.NewColumnRepository(gormDB)

	boardID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "columns" WHERE board_id = .* ORDER BY position`).
		WithArgs(boardID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "board_id", "slug", "title", "position"}).
			AddRow(uuid.New().String(), boardID.String(), "TODO", "To Do", 1).
			AddRow(uuid.New().String(), boardID.String(), "IN_PROGRESS", "In Progress", 2).
			AddRow(uuid.New().String(), boardID.String(), "DONE", "Done", 3))

	// Act
	columns, err := columnRepo.GetByBoardID(context.Background(), boardID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, columns, 3)
	assert.Equal(t, model.SlugTodo, columns[0].Slug)
	assert.Equal(t, model.SlugInProgress, columns[1].Slug)
	assert.Equal(t, model.SlugDone, columns[2].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepository_GetBySlug_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	columnRepo := repository.NewColumnRepository(gormDB)

	boardID := uuid.New()
	columnID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "columns" WHERE board_id = .* AND slug = .* LIMIT 1`).
		WithArgs(boardID, model.SlugTodo).
		WillReturnRows(sqlmock.NewRows([]string{"id", "board_id", "slug", "title", "position"}).
			AddRow(columnID.String(), boardID.String(), "TODO", "To Do", 1))

	// Act
	column, err := columnRepo.GetBySlug(context.Background(), boardID, model.SlugTodo)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, column)
	assert.Equal(t, columnID, column.ID)
	assert.Equal(t, model.SlugTodo, column.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepository_GetBySlug_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	columnRepo := repository.NewColumnRepository(gormDB)

	boardID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "columns" WHERE board_id = .* AND slug = .* LIMIT 1`).
		WithArgs(boardID, model.SlugDone).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	column, err := columnRepo.GetBySlug(context.Background(), boardID, model.SlugDone)

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, column)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	columnRepo := repository.NewColumnRepository(gormDB)

	columnID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "columns" WHERE id = .* LIMIT 1`).
		WithArgs(columnID).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	column, err := columnRepo.GetByID(context.Background(), columnID)

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, column)
	assert.NoError(t, mock.ExpectationsWereMet())
}
