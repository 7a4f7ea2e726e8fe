package service

import (
	"errors"
	"io"
	"time"

	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
)

// In-memory fakes for the repository and storage interfaces. Hand written
// rather than generated; the surfaces are small.

type fakeEntryRepo struct {
	entries map[string]*model.Entry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: map[string]*model.Entry{}}
}

func (r *fakeEntryRepo) Create(entry *model.Entry) error {
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEntryRepo) ByID(id string) (*model.Entry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrEntryNotFound
	}
	return entry, nil
}

func (r *fakeEntryRepo) ByRider(riderID string) ([]*model.Entry, error) {
	var out []*model.Entry
	for _, entry := range r.entries {
		if entry.RiderID == riderID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) SetAlerted(id string) error {
	entry, ok := r.entries[id]
	if !ok {
		return repository.ErrEntryNotFound
	}
	entry.AlertedMichelle = true
	return nil
}

func (r *fakeEntryRepo) AlertedByID(id string) (*model.Entry, error) {
	entry, ok := r.entries[id]
	if !ok || !entry.AlertedMichelle {
		return nil, repository.ErrEntryNotFound
	}
	return entry, nil
}

func (r *fakeEntryRepo) Alerted() ([]*model.Entry, error) {
	var out []*model.Entry
	for _, entry := range r.entries {
		if entry.AlertedMichelle {
			out = append(out, entry)
		}
	}
	return out, nil
}

type fakeCommentRepo struct {
	comments []*model.Comment
}

func (r *fakeCommentRepo) Create(comment *model.Comment) error {
	r.comments = append(r.comments, comment)
	return nil
}

func (r *fakeCommentRepo) ByEntry(entryID string) ([]*model.Comment, error) {
	var out []*model.Comment
	for _, comment := range r.comments {
		if comment.EntryID == entryID {
			out = append(out, comment)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	events map[string]*model.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*model.Event{}}
}

func (r *fakeEventRepo) Create(event *model.Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) ByID(id string) (*model.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	return event, nil
}

func (r *fakeEventRepo) ByHorseInRange(horseID, from, to string) ([]*model.Event, error) {
	var out []*model.Event
	for _, event := range r.events {
		if event.HorseID == horseID && event.Date >= from && event.Date < to {
			out = append(out, event)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) InRange(from, to string) ([]*model.Event, error) {
	var out []*model.Event
	for _, event := range r.events {
		if event.Date >= from && event.Date < to {
			out = append(out, event)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Update(event *model.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return repository.ErrEventNotFound
	}
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) Delete(id string) error {
	delete(r.events, id)
	return nil
}

type fakeGoalRepo struct {
	goals map[string]*model.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: map[string]*model.Goal{}}
}

func (r *fakeGoalRepo) Create(goal *model.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) ByID(riderID, goalID string) (*model.Goal, error) {
	goal, ok := r.goals[goalID]
	if !ok || goal.RiderID != riderID {
		return nil, repository.ErrGoalNotFound
	}
	return goal, nil
}

func (r *fakeGoalRepo) ByRider(riderID string) ([]*model.Goal, error) {
	var out []*model.Goal
	for _, goal := range r.goals {
		if goal.RiderID == riderID {
			out = append(out, goal)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(goal *model.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return repository.ErrGoalNotFound
	}
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepo) Delete(riderID, goalID string) error {
	goal, ok := r.goals[goalID]
	if !ok || goal.RiderID != riderID {
		return repository.ErrGoalNotFound
	}
	delete(r.goals, goalID)
	return nil
}

type fakeStorage struct {
	saved   map[string]bool
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string]bool{}}
}

func (s *fakeStorage) Save(path string, file io.Reader) error {
	s.saved[path] = true
	return nil
}

func (s *fakeStorage) Delete(path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *fakeStorage) URL(path string) string {
	return "https://media.test/" + path
}

// fakeNotifier records every alert send and can be told to fail.
type fakeNotifier struct {
	sends []notifierSend
	fail  bool
}

type notifierSend struct {
	RiderName string
	HorseName string
	Preview   string
}

func (n *fakeNotifier) NotifyEntryAlert(riderName, horseName string, submittedAt time.Time, preview string) error {
	if n.fail {
		return errors.New("smtp connection refused")
	}
	n.sends = append(n.sends, notifierSend{RiderName: riderName, HorseName: horseName, Preview: preview})
	return nil
}

func testRider() *model.Rider {
	return &model.Rider{
		ID:        "rider-1",
		Name:      "Emma",
		HorseID:   "horse-1",
		HorseName: "Spirit",
	}
}
