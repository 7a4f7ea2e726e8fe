package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/stablebook/stablebook/internal/ctxkeys"
	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/service"
	"github.com/stablebook/stablebook/internal/ui"
	"github.com/stablebook/stablebook/internal/validation"
)

type CalendarHandler struct {
	calendarService *service.CalendarService
}

func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

type calendarPage struct {
	Month    *service.Month
	BasePath string
	CanAdd   bool
	Editable map[string]bool
}

// Month renders the rider's calendar, scoped to their horse.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())

	year, month := service.ClampMonth(queryInt(r, "year"), queryInt(r, "month"), time.Now())

	view, err := h.calendarService.MonthForRider(rider, year, month)
	if err != nil {
		slog.Error("failed to load calendar", "error", err, "rider_id", rider.ID)
		http.Error(w, "Failed to load calendar", http.StatusInternalServerError)
		return
	}

	editable := map[string]bool{}
	for _, event := range view.Events() {
		if event.CreatedByRider(rider.ID) {
			editable[event.ID] = true
		}
	}

	ui.Render(w, r, "calendar.html", "Calendar", &calendarPage{
		Month:    view,
		BasePath: "/calendar/",
		CanAdd:   true,
		Editable: editable,
	})
}

type eventFormPage struct {
	Heading     string
	Action      string
	BasePath    string
	Error       string
	Types       []string
	Title       string
	Description string
	EventType   string
	Date        string
	Time        string
}

func (h *CalendarHandler) AddEventPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "event_form.html", "Add Event", &eventFormPage{
		Heading:   "Add event",
		Action:    "/calendar/event/add/",
		BasePath:  "/calendar/",
		Types:     model.EventTypes,
		EventType: model.EventTypeOther,
		Date:      time.Now().Format("2006-01-02"),
	})
}

func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())

	payload, err := validation.ValidateEvent(
		r.FormValue("title"),
		r.FormValue("description"),
		r.FormValue("event_type"),
		r.FormValue("date"),
		r.FormValue("time"),
	)
	if err != nil {
		ui.Render(w, r, "event_form.html", "Add Event", &eventFormPage{
			Heading:     "Add event",
			Action:      "/calendar/event/add/",
			BasePath:    "/calendar/",
			Error:       err.Error(),
			Types:       model.EventTypes,
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			EventType:   r.FormValue("event_type"),
			Date:        r.FormValue("date"),
			Time:        r.FormValue("time"),
		})
		return
	}

	_, err = h.calendarService.CreateEvent(rider, payload)
	if err != nil {
		slog.Error("failed to create event", "error", err, "rider_id", rider.ID)
		http.Error(w, "Failed to create event", http.StatusInternalServerError)
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Event added to the calendar.")
	http.Redirect(w, r, "/calendar/", http.StatusSeeOther)
}

func (h *CalendarHandler) EditEventPage(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	eventID := r.PathValue("id")

	event, err := h.calendarService.EventForEdit(rider, eventID)
	if err != nil {
		h.eventError(w, r, err, eventID)
		return
	}

	timeValue := ""
	if event.Time != nil {
		timeValue = *event.Time
	}

	ui.Render(w, r, "event_form.html", "Edit Event", &eventFormPage{
		Heading:     "Edit event",
		Action:      "/calendar/event/" + event.ID + "/edit/",
		BasePath:    "/calendar/",
		Types:       model.EventTypes,
		Title:       event.Title,
		Description: event.Description,
		EventType:   event.EventType,
		Date:        event.Date,
		Time:        timeValue,
	})
}

func (h *CalendarHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	eventID := r.PathValue("id")

	payload, err := validation.ValidateEvent(
		r.FormValue("title"),
		r.FormValue("description"),
		r.FormValue("event_type"),
		r.FormValue("date"),
		r.FormValue("time"),
	)
	if err != nil {
		ui.Render(w, r, "event_form.html", "Edit Event", &eventFormPage{
			Heading:     "Edit event",
			Action:      "/calendar/event/" + eventID + "/edit/",
			BasePath:    "/calendar/",
			Error:       err.Error(),
			Types:       model.EventTypes,
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			EventType:   r.FormValue("event_type"),
			Date:        r.FormValue("date"),
			Time:        r.FormValue("time"),
		})
		return
	}

	_, err = h.calendarService.UpdateEvent(rider, eventID, payload)
	if err != nil {
		h.eventError(w, r, err, eventID)
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Event updated.")
	http.Redirect(w, r, "/calendar/", http.StatusSeeOther)
}

func (h *CalendarHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	eventID := r.PathValue("id")

	err := h.calendarService.DeleteEvent(rider, eventID)
	if err != nil {
		h.eventError(w, r, err, eventID)
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Event deleted.")
	http.Redirect(w, r, "/calendar/", http.StatusSeeOther)
}

// eventError maps event failures to responses. Events stay visible on the
// calendar to everyone, so touching someone else's event is a permission
// refusal back to the calendar, not a 404.
func (h *CalendarHandler) eventError(w http.ResponseWriter, r *http.Request, err error, eventID string) {
	if errors.Is(err, service.ErrNotEventOwner) {
		ui.SetFlash(w, r, ui.FlashError, "You don't have permission to modify this event.")
		http.Redirect(w, r, "/calendar/", http.StatusSeeOther)
		return
	}
	if errors.Is(err, repository.ErrEventNotFound) {
		notFound(w, r)
		return
	}
	slog.Error("event operation failed", "error", err, "event_id", eventID)
	http.Error(w, "Failed to update calendar", http.StatusInternalServerError)
}
