package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/stablebook/stablebook/internal/model"
)

var (
	ErrHorseNotFound  = errors.New("horse not found")
	ErrDuplicateHorse = errors.New("horse name already exists")
)

type HorseRepository interface {
	Create(horse *model.Horse) error
	ByID(id string) (*model.Horse, error)
	All() ([]*model.Horse, error)
	Update(horse *model.Horse) error
	Delete(id string) error
}

type horseRepository struct {
	db *sqlx.DB
}

func NewHorseRepository(db *sqlx.DB) HorseRepository {
	return &horseRepository{db: db}
}

func (r *horseRepository) Create(horse *model.Horse) error {
	query := `INSERT INTO horses (id, name, photo_path, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, horse.ID, horse.Name, horse.PhotoPath, horse.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateHorse
		}
		return err
	}

	return nil
}

func (r *horseRepository) ByID(id string) (*model.Horse, error) {
	horse := &model.Horse{}
	query := `SELECT * FROM horses WHERE id = $1`

	err := r.db.Get(horse, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrHorseNotFound
	}

	return horse, err
}

func (r *horseRepository) All() ([]*model.Horse, error) {
	var horses []*model.Horse
	query := `SELECT * FROM horses ORDER BY name ASC`

	err := r.db.Select(&horses, query)
	if err != nil {
		return nil, err
	}

	return horses, nil
}

func (r *horseRepository) Update(horse *model.Horse) error {
	query := `UPDATE horses SET name = $1, photo_path = $2 WHERE id = $3`

	result, err := r.db.Exec(query, horse.Name, horse.PhotoPath, horse.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateHorse
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHorseNotFound
	}

	return nil
}

func (r *horseRepository) Delete(id string) error {
	query := `DELETE FROM horses WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrHorseNotFound
	}

	return nil
}

// isUniqueViolation detects unique constraint errors for both SQLite and
// PostgreSQL without importing driver-specific error types.
func isUniqueViolation(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "duplicate key value") ||
		strings.Contains(errStr, "constraint failed: UNIQUE")
}
