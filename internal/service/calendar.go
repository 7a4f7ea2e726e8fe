package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/validation"
)

var (
	ErrNotEventOwner = errors.New("not the creator of this event")
)

// Month is one rendered calendar month: a fixed six-row Monday-first grid of
// day numbers (0 = padding cell outside the month), events bucketed by
// day-of-month in date-then-time order, and the adjacent months with year
// rollover applied.
type Month struct {
	Year  int
	Month int

	Weeks       [][]int
	EventsByDay map[int][]*model.Event

	PrevYear  int
	PrevMonth int
	NextYear  int
	NextMonth int
}

// Name returns the display name of the month, e.g. "June 2025".
func (m *Month) Name() string {
	return fmt.Sprintf("%s %d", time.Month(m.Month).String(), m.Year)
}

// Events flattens the day buckets back into one ordered slice.
func (m *Month) Events() []*model.Event {
	var all []*model.Event
	for _, week := range m.Weeks {
		for _, day := range week {
			if day != 0 {
				all = append(all, m.EventsByDay[day]...)
			}
		}
	}
	return all
}

type CalendarService struct {
	eventRepo repository.EventRepository
}

func NewCalendarService(eventRepo repository.EventRepository) *CalendarService {
	return &CalendarService{eventRepo: eventRepo}
}

// MonthForRider builds the month view scoped to the rider's own horse.
func (s *CalendarService) MonthForRider(rider *model.Rider, year, month int) (*Month, error) {
	from, to := monthRange(year, month)
	events, err := s.eventRepo.ByHorseInRange(rider.HorseID, from, to)
	if err != nil {
		return nil, err
	}
	return buildMonth(year, month, events), nil
}

// MonthForTrainer builds the month view across all horses.
func (s *CalendarService) MonthForTrainer(year, month int) (*Month, error) {
	from, to := monthRange(year, month)
	events, err := s.eventRepo.InRange(from, to)
	if err != nil {
		return nil, err
	}
	return buildMonth(year, month, events), nil
}

// CreateEvent binds the event to the rider's horse and records the rider as
// creator.
func (s *CalendarService) CreateEvent(rider *model.Rider, payload *validation.EventPayload) (*model.Event, error) {
	now := time.Now()
	event := &model.Event{
		ID:          uuid.New().String(),
		HorseID:     rider.HorseID,
		Title:       payload.Title,
		Description: payload.Description,
		EventType:   payload.EventType,
		Date:        payload.Date,
		Time:        payload.Time,
		CreatedBy:   &rider.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.eventRepo.Create(event)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// EventForEdit loads an event for the edit form, refusing riders who did not
// create it. Riders who merely share the calendar can view but not edit.
func (s *CalendarService) EventForEdit(rider *model.Rider, eventID string) (*model.Event, error) {
	event, err := s.eventRepo.ByID(eventID)
	if err != nil {
		return nil, err
	}

	if !event.CreatedByRider(rider.ID) {
		return nil, ErrNotEventOwner
	}

	return event, nil
}

func (s *CalendarService) UpdateEvent(rider *model.Rider, eventID string, payload *validation.EventPayload) (*model.Event, error) {
	event, err := s.EventForEdit(rider, eventID)
	if err != nil {
		return nil, err
	}

	event.Title = payload.Title
	event.Description = payload.Description
	event.EventType = payload.EventType
	event.Date = payload.Date
	event.Time = payload.Time
	event.UpdatedAt = time.Now()

	err = s.eventRepo.Update(event)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

func (s *CalendarService) DeleteEvent(rider *model.Rider, eventID string) error {
	_, err := s.EventForEdit(rider, eventID)
	if err != nil {
		return err
	}

	return s.eventRepo.Delete(eventID)
}

// ClampMonth normalizes query parameters to a usable year/month, defaulting
// to the given time when out of range.
func ClampMonth(year, month int, now time.Time) (int, int) {
	if year < 1 || month < 1 || month > 12 {
		return now.Year(), int(now.Month())
	}
	return year, month
}

// monthRange returns the ISO date bounds [from, to) of a month.
func monthRange(year, month int) (string, string) {
	from := fmt.Sprintf("%04d-%02d-01", year, month)
	nextYear, nextMonth := NextMonth(year, month)
	to := fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)
	return from, to
}

// PrevMonth returns the month before (year, month), rolling the year back
// at January.
func PrevMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// NextMonth returns the month after (year, month), rolling the year forward
// at December.
func NextMonth(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// MonthGrid lays out a month as exactly six rows of seven day numbers,
// Monday first, with zero in cells that fall outside the month.
func MonthGrid(year, month int) [][]int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// Monday=0 .. Sunday=6
	offset := (int(first.Weekday()) + 6) % 7
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	weeks := make([][]int, 6)
	day := 1 - offset
	for w := 0; w < 6; w++ {
		week := make([]int, 7)
		for d := 0; d < 7; d++ {
			if day >= 1 && day <= daysInMonth {
				week[d] = day
			}
			day++
		}
		weeks[w] = week
	}

	return weeks
}

// buildMonth buckets already-ordered events by day-of-month and assembles
// the grid plus navigation pairs.
func buildMonth(year, month int, events []*model.Event) *Month {
	byDay := make(map[int][]*model.Event)
	for _, event := range events {
		day := event.Day()
		if day == 0 {
			continue
		}
		byDay[day] = append(byDay[day], event)
	}

	prevYear, prevMonth := PrevMonth(year, month)
	nextYear, nextMonth := NextMonth(year, month)

	return &Month{
		Year:        year,
		Month:       month,
		Weeks:       MonthGrid(year, month),
		EventsByDay: byDay,
		PrevYear:    prevYear,
		PrevMonth:   prevMonth,
		NextYear:    nextYear,
		NextMonth:   nextMonth,
	}
}
