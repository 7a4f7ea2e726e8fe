package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stablebook/stablebook/internal/model"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

type EventRepository interface {
	Create(event *model.Event) error
	ByID(id string) (*model.Event, error)
	// ByHorseInRange returns a single horse's events with date in
	// [from, to), ordered by date, untimed events after timed ones per day.
	ByHorseInRange(horseID, from, to string) ([]*model.Event, error)
	// InRange is the all-horses variant used by the trainer calendar.
	InRange(from, to string) ([]*model.Event, error)
	Update(event *model.Event) error
	Delete(id string) error
}

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `e.id, e.horse_id, e.title, e.description, e.event_type,
	e.date, e.time, e.created_by, e.created_at, e.updated_at,
	h.name AS horse_name`

func (r *eventRepository) Create(event *model.Event) error {
	query := `INSERT INTO events (id, horse_id, title, description, event_type, date, time, created_by, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		event.ID,
		event.HorseID,
		event.Title,
		event.Description,
		event.EventType,
		event.Date,
		event.Time,
		event.CreatedBy,
		event.CreatedAt,
		event.UpdatedAt,
	)

	return err
}

func (r *eventRepository) ByID(id string) (*model.Event, error) {
	event := &model.Event{}
	query := `SELECT ` + eventColumns + `
	          FROM events e
	          JOIN horses h ON h.id = e.horse_id
	          WHERE e.id = $1`

	err := r.db.Get(event, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}

	return event, err
}

func (r *eventRepository) ByHorseInRange(horseID, from, to string) ([]*model.Event, error) {
	var events []*model.Event
	query := `SELECT ` + eventColumns + `
	          FROM events e
	          JOIN horses h ON h.id = e.horse_id
	          WHERE e.horse_id = $1 AND e.date >= $2 AND e.date < $3
	          ORDER BY e.date ASC, e.time IS NULL ASC, e.time ASC`

	err := r.db.Select(&events, query, horseID, from, to)
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) InRange(from, to string) ([]*model.Event, error) {
	var events []*model.Event
	query := `SELECT ` + eventColumns + `
	          FROM events e
	          JOIN horses h ON h.id = e.horse_id
	          WHERE e.date >= $1 AND e.date < $2
	          ORDER BY e.date ASC, e.time IS NULL ASC, e.time ASC`

	err := r.db.Select(&events, query, from, to)
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) Update(event *model.Event) error {
	query := `UPDATE events
	          SET title = $1, description = $2, event_type = $3, date = $4, time = $5, updated_at = $6
	          WHERE id = $7`

	result, err := r.db.Exec(query,
		event.Title,
		event.Description,
		event.EventType,
		event.Date,
		event.Time,
		time.Now(),
		event.ID,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (r *eventRepository) Delete(id string) error {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrEventNotFound
	}

	return nil
}
