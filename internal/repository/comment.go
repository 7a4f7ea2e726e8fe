package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/stablebook/stablebook/internal/model"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	ByEntry(entryID string) ([]*model.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	query := `INSERT INTO comments (id, entry_id, text, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, comment.ID, comment.EntryID, comment.Text, comment.CreatedAt)
	return err
}

func (r *commentRepository) ByEntry(entryID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	query := `SELECT * FROM comments WHERE entry_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&comments, query, entryID)
	if err != nil {
		return nil, err
	}

	return comments, nil
}
