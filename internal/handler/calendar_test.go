package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/service"
)

type fakeEventRepo struct {
	events map[string]*model.Event
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
	return nil, nil
}

func (r *fakeEventRepo) InRange(from, to string) ([]*model.Event, error) { return nil, nil }

func (r *fakeEventRepo) Update(event *model.Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) Delete(id string) error {
	delete(r.events, id)
	return nil
}

func newCalendarServer(events *fakeEventRepo) *http.ServeMux {
	h := NewCalendarHandler(service.NewCalendarService(events))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /calendar/event/{id}/edit/{$}", h.EditEventPage)
	mux.HandleFunc("POST /calendar/event/{id}/delete/{$}", h.DeleteEvent)
	return mux
}

func strptr(s string) *string { return &s }

func TestDeleteEventNotCreatorRedirectsWithPermissionMessage(t *testing.T) {
	events := &fakeEventRepo{events: map[string]*model.Event{
		"ev-1": {ID: "ev-1", HorseID: "horse-1", Title: "Vet visit", Date: "2025-06-14", CreatedBy: strptr("rider-2")},
	}}
	mux := newCalendarServer(events)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, riderRequest("POST", "/calendar/event/ev-1/delete/", testJournalRider()))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/calendar/" {
		t.Errorf("Location = %q, want /calendar/", loc)
	}

	messages := flashMessages(t, rec)
	if len(messages) != 1 || messages[0] != "You don't have permission to modify this event." {
		t.Errorf("flashes = %v, want the permission message", messages)
	}

	if _, ok := events.events["ev-1"]; !ok {
		t.Error("non-creator delete removed the event")
	}
}

func TestEditEventPageOrphanedEventRefused(t *testing.T) {
	// Creator deleted: created_by is null and nobody may edit.
	events := &fakeEventRepo{events: map[string]*model.Event{
		"ev-1": {ID: "ev-1", HorseID: "horse-1", Title: "Farrier", Date: "2025-06-20"},
	}}
	mux := newCalendarServer(events)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, riderRequest("GET", "/calendar/event/ev-1/edit/", testJournalRider()))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/calendar/" {
		t.Errorf("Location = %q, want /calendar/", loc)
	}
}

func TestDeleteEventUnknownIs404(t *testing.T) {
	mux := newCalendarServer(&fakeEventRepo{events: map[string]*model.Event{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, riderRequest("POST", "/calendar/event/nope/delete/", testJournalRider()))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
