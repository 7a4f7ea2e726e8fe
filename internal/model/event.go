package model

import (
	"time"
)

const (
	EventTypeCompetition = "competition"
	EventTypeVet         = "vet"
	EventTypeFarrier     = "farrier"
	EventTypeOther       = "other"
)

// EventTypes lists the valid event types in display order.
var EventTypes = []string{
	EventTypeCompetition,
	EventTypeVet,
	EventTypeFarrier,
	EventTypeOther,
}

// Event is a calendar occurrence tied to one horse. Date is an ISO
// yyyy-mm-dd string and Time an optional HH:MM string; ISO text ordering
// matches chronological ordering so range queries and sorting stay in SQL.
// CreatedBy is nil for events whose creating rider was since deleted.
type Event struct {
	ID          string    `db:"id"`
	HorseID     string    `db:"horse_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	EventType   string    `db:"event_type"`
	Date        string    `db:"date"`
	Time        *string   `db:"time"`
	CreatedBy   *string   `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	// HorseName is populated by queries that join horses; empty otherwise.
	HorseName string `db:"horse_name"`
}

// Day returns the day-of-month of the event date, or 0 if the stored date
// is malformed.
func (e *Event) Day() int {
	t, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return 0
	}
	return t.Day()
}

// CreatedByRider reports whether the given rider created this event.
func (e *Event) CreatedByRider(riderID string) bool {
	return e.CreatedBy != nil && *e.CreatedBy == riderID
}

func ValidEventType(t string) bool {
	for _, v := range EventTypes {
		if v == t {
			return true
		}
	}
	return false
}
