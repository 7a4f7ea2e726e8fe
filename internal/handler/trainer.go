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
)

// TrainerHandler serves Michelle's side: the shared-password login, the
// review dashboard over alerted entries, commenting, and the all-horses
// calendar.
type TrainerHandler struct {
	authService     *service.AuthService
	reviewService   *service.ReviewService
	calendarService *service.CalendarService
}

func NewTrainerHandler(
	authService *service.AuthService,
	reviewService *service.ReviewService,
	calendarService *service.CalendarService,
) *TrainerHandler {
	return &TrainerHandler{
		authService:     authService,
		reviewService:   reviewService,
		calendarService: calendarService,
	}
}

type trainerLoginPage struct {
	Error string
}

func (h *TrainerHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if ctxkeys.IsTrainer(r.Context()) {
		http.Redirect(w, r, "/michelle/dashboard/", http.StatusSeeOther)
		return
	}
	ui.Render(w, r, "michelle_login.html", "Trainer Sign In", &trainerLoginPage{})
}

func (h *TrainerHandler) Login(w http.ResponseWriter, r *http.Request) {
	err := h.authService.LoginTrainer(r.FormValue("password"))
	if err != nil {
		ui.Render(w, r, "michelle_login.html", "Trainer Sign In", &trainerLoginPage{Error: "Incorrect password."})
		return
	}

	token, err := h.authService.GenerateSession(service.RoleTrainer, "")
	if err != nil {
		slog.Error("failed to generate trainer session", "error", err)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	h.authService.SetSessionCookie(w, token)
	http.Redirect(w, r, "/michelle/dashboard/", http.StatusSeeOther)
}

func (h *TrainerHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearSessionCookie(w)
	http.Redirect(w, r, "/michelle/", http.StatusSeeOther)
}

// Dashboard splits alerted entries into those still waiting for a comment
// and those already reviewed.
func (h *TrainerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	pending, reviewed, err := h.reviewService.AlertedEntries()
	if err != nil {
		slog.Error("failed to load alerted entries", "error", err)
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "michelle_dashboard.html", "Review", &struct {
		Pending  []*model.Entry
		Reviewed []*model.Entry
	}{Pending: pending, Reviewed: reviewed})
}

type trainerEntryPage struct {
	Entry    *model.Entry
	Comments []*model.Comment
	ImageURL string
	Error    string
}

// Entry shows one alerted entry. Entries never alerted are invisible to the
// trainer and read as not found.
func (h *TrainerHandler) Entry(w http.ResponseWriter, r *http.Request) {
	h.renderEntry(w, r, r.PathValue("id"), "")
}

func (h *TrainerHandler) renderEntry(w http.ResponseWriter, r *http.Request, entryID, errMsg string) {
	entry, comments, err := h.reviewService.Entry(entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			notFound(w, r)
			return
		}
		slog.Error("failed to load entry for review", "error", err, "entry_id", entryID)
		http.Error(w, "Failed to load entry", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "michelle_entry.html", "Review Entry", &trainerEntryPage{
		Entry:    entry,
		Comments: comments,
		ImageURL: h.reviewService.ImageURL(entry.ImagePath),
		Error:    errMsg,
	})
}

func (h *TrainerHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	entryID := r.PathValue("id")

	_, err := h.reviewService.AddComment(entryID, r.FormValue("text"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEntryNotFound):
			notFound(w, r)
		case errors.Is(err, service.ErrEmptyComment):
			h.renderEntry(w, r, entryID, "Comment text is required.")
		default:
			slog.Error("failed to add comment", "error", err, "entry_id", entryID)
			http.Error(w, "Failed to add comment", http.StatusInternalServerError)
		}
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Comment posted.")
	http.Redirect(w, r, "/michelle/entry/"+entryID+"/", http.StatusSeeOther)
}

// Calendar renders the month across every horse. The trainer's view is
// read only; event editing stays with the rider who created the event.
func (h *TrainerHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	year, month := service.ClampMonth(queryInt(r, "year"), queryInt(r, "month"), time.Now())

	view, err := h.calendarService.MonthForTrainer(year, month)
	if err != nil {
		slog.Error("failed to load trainer calendar", "error", err)
		http.Error(w, "Failed to load calendar", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "calendar.html", "Calendar", &calendarPage{
		Month:    view,
		BasePath: "/michelle/calendar/",
		CanAdd:   false,
		Editable: map[string]bool{},
	})
}
