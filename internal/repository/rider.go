package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/stablebook/stablebook/internal/model"
)

var (
	ErrRiderNotFound  = errors.New("rider not found")
	ErrDuplicateRider = errors.New("rider already exists for this horse")
)

type RiderRepository interface {
	Create(rider *model.Rider) error
	ByID(id string) (*model.Rider, error)
	ByIDAndHorse(id, horseID string) (*model.Rider, error)
	ByHorse(horseID string) ([]*model.Rider, error)
	All() ([]*model.Rider, error)
	Delete(id string) error
}

type riderRepository struct {
	db *sqlx.DB
}

func NewRiderRepository(db *sqlx.DB) RiderRepository {
	return &riderRepository{db: db}
}

func (r *riderRepository) Create(rider *model.Rider) error {
	query := `INSERT INTO riders (id, name, horse_id, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, rider.ID, rider.Name, rider.HorseID, rider.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRider
		}
		return err
	}

	return nil
}

func (r *riderRepository) ByID(id string) (*model.Rider, error) {
	rider := &model.Rider{}
	query := `SELECT r.id, r.name, r.horse_id, r.created_at, h.name AS horse_name
	          FROM riders r
	          JOIN horses h ON h.id = r.horse_id
	          WHERE r.id = $1`

	err := r.db.Get(rider, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrRiderNotFound
	}

	return rider, err
}

// ByIDAndHorse resolves a rider only when it belongs to the given horse.
// Login uses this so a mismatched pair fails the same way as a missing rider.
func (r *riderRepository) ByIDAndHorse(id, horseID string) (*model.Rider, error) {
	rider := &model.Rider{}
	query := `SELECT r.id, r.name, r.horse_id, r.created_at, h.name AS horse_name
	          FROM riders r
	          JOIN horses h ON h.id = r.horse_id
	          WHERE r.id = $1 AND r.horse_id = $2`

	err := r.db.Get(rider, query, id, horseID)
	if err == sql.ErrNoRows {
		return nil, ErrRiderNotFound
	}

	return rider, err
}

func (r *riderRepository) ByHorse(horseID string) ([]*model.Rider, error) {
	var riders []*model.Rider
	query := `SELECT r.id, r.name, r.horse_id, r.created_at, h.name AS horse_name
	          FROM riders r
	          JOIN horses h ON h.id = r.horse_id
	          WHERE r.horse_id = $1
	          ORDER BY r.name ASC`

	err := r.db.Select(&riders, query, horseID)
	if err != nil {
		return nil, err
	}

	return riders, nil
}

func (r *riderRepository) All() ([]*model.Rider, error) {
	var riders []*model.Rider
	query := `SELECT r.id, r.name, r.horse_id, r.created_at, h.name AS horse_name
	          FROM riders r
	          JOIN horses h ON h.id = r.horse_id
	          ORDER BY h.name ASC, r.name ASC`

	err := r.db.Select(&riders, query)
	if err != nil {
		return nil, err
	}

	return riders, nil
}

func (r *riderRepository) Delete(id string) error {
	query := `DELETE FROM riders WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrRiderNotFound
	}

	return nil
}
