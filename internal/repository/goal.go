package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/stablebook/stablebook/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(riderID, goalID string) (*model.Goal, error)
	ByRider(riderID string) ([]*model.Goal, error)
	Update(goal *model.Goal) error
	Delete(riderID, goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, rider_id, title, description, status, completed_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.RiderID,
		goal.Title,
		goal.Description,
		goal.Status,
		goal.CompletedAt,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

// ByID scopes by rider so a rider can never load another rider's goal.
func (r *goalRepository) ByID(riderID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND rider_id = $2`

	err := r.db.Get(goal, query, goalID, riderID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) ByRider(riderID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE rider_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&goals, query, riderID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET title = $1, description = $2, status = $3, completed_at = $4, updated_at = $5
	          WHERE id = $6 AND rider_id = $7`

	result, err := r.db.Exec(query,
		goal.Title,
		goal.Description,
		goal.Status,
		goal.CompletedAt,
		goal.UpdatedAt,
		goal.ID,
		goal.RiderID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(riderID, goalID string) error {
	query := `DELETE FROM goals WHERE id = $1 AND rider_id = $2`

	result, err := r.db.Exec(query, goalID, riderID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
