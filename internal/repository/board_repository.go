package repository

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// Titles shown for the provisioned columns, keyed by slug order.
var columnTitles = map[model.ColumnSlug]string{
	model.SlugTodo:       "To Do",
	model.SlugInProgress: "In Progress",
	model.SlugDone:       "Done",
}

// Provision creates the owner's board together with its three fixed columns
// in a single transaction. The unique index on owner_id rejects a second
// board for the same owner; that case surfaces as ErrBoardExists.
func (r *BoardRepository) Provision(ctx context.Context, ownerID uuid.UUID, name string) (*model.Board, error) {
	board := &model.Board{
		OwnerID: ownerID,
		Name:    name,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(board).Error; err != nil {
			return err
		}
		for i, slug := range model.ColumnSlugs {
			column := &model.Column{
				BoardID:  board.ID,
				Slug:     slug,
				Title:    columnTitles[slug],
				Position: i + 1,
			}
			if err := tx.Create(column).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return nil, ErrBoardExists
		}
		return nil, err
	}
	return board, nil
}

// GetByOwner resolves the caller's single board. Returns nil when the owner
// has none.
func (r *BoardRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}
