package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/stablebook/stablebook/internal/model"
)

// EventPayload is a validated calendar event form submission. Time is nil
// when the rider left the time field empty.
type EventPayload struct {
	Title       string
	Description string
	EventType   string
	Date        string
	Time        *string
}

// ValidateEvent checks a raw event form and returns a normalized payload or
// the first validation error. No partial values escape on failure.
func ValidateEvent(title, description, eventType, date, timeOfDay string) (*EventPayload, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if len(title) > 200 {
		return nil, errors.New("title is too long (max 200 characters)")
	}

	if !model.ValidEventType(eventType) {
		return nil, errors.New("invalid event type")
	}

	date = strings.TrimSpace(date)
	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}

	payload := &EventPayload{
		Title:       title,
		Description: strings.TrimSpace(description),
		EventType:   eventType,
		Date:        date,
	}

	timeOfDay = strings.TrimSpace(timeOfDay)
	if timeOfDay != "" {
		_, err := time.Parse("15:04", timeOfDay)
		if err != nil {
			return nil, errors.New("time must be in HH:MM format")
		}
		payload.Time = &timeOfDay
	}

	return payload, nil
}
