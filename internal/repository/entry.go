package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stablebook/stablebook/internal/model"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
)

type EntryRepository interface {
	Create(entry *model.Entry) error
	ByID(id string) (*model.Entry, error)
	ByRider(riderID string) ([]*model.Entry, error)
	SetAlerted(id string) error
	// AlertedByID returns the entry only if it is currently alerted; a
	// non-alerted entry reports ErrEntryNotFound, never a permission error.
	AlertedByID(id string) (*model.Entry, error)
	Alerted() ([]*model.Entry, error)
}

type entryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(entry *model.Entry) error {
	query := `INSERT INTO entries (id, rider_id, text_content, image_path, alerted_michelle, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.RiderID,
		entry.TextContent,
		entry.ImagePath,
		entry.AlertedMichelle,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	return err
}

func (r *entryRepository) ByID(id string) (*model.Entry, error) {
	entry := &model.Entry{}
	query := `SELECT id, rider_id, text_content, image_path, alerted_michelle, created_at, updated_at
	          FROM entries WHERE id = $1`

	err := r.db.Get(entry, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}

	return entry, err
}

func (r *entryRepository) ByRider(riderID string) ([]*model.Entry, error) {
	var entries []*model.Entry
	query := `SELECT id, rider_id, text_content, image_path, alerted_michelle, created_at, updated_at
	          FROM entries WHERE rider_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&entries, query, riderID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepository) SetAlerted(id string) error {
	query := `UPDATE entries SET alerted_michelle = TRUE, updated_at = $1 WHERE id = $2`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *entryRepository) AlertedByID(id string) (*model.Entry, error) {
	entry := &model.Entry{}
	query := `SELECT e.id, e.rider_id, e.text_content, e.image_path, e.alerted_michelle,
	                 e.created_at, e.updated_at,
	                 r.name AS rider_name, h.name AS horse_name
	          FROM entries e
	          JOIN riders r ON r.id = e.rider_id
	          JOIN horses h ON h.id = r.horse_id
	          WHERE e.id = $1 AND e.alerted_michelle = TRUE`

	err := r.db.Get(entry, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}

	return entry, err
}

// Alerted returns every alerted entry newest-first, with rider/horse names
// and the comment count so the caller can split pending from reviewed.
func (r *entryRepository) Alerted() ([]*model.Entry, error) {
	var entries []*model.Entry
	query := `SELECT e.id, e.rider_id, e.text_content, e.image_path, e.alerted_michelle,
	                 e.created_at, e.updated_at,
	                 r.name AS rider_name, h.name AS horse_name,
	                 (SELECT COUNT(*) FROM comments c WHERE c.entry_id = e.id) AS comment_count
	          FROM entries e
	          JOIN riders r ON r.id = e.rider_id
	          JOIN horses h ON h.id = r.horse_id
	          WHERE e.alerted_michelle = TRUE
	          ORDER BY e.created_at DESC`

	err := r.db.Select(&entries, query)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
