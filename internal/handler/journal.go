package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/stablebook/stablebook/internal/ctxkeys"
	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/service"
	"github.com/stablebook/stablebook/internal/ui"
)

const maxUploadBytes = 10 << 20

type JournalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

func (h *JournalHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())

	entries, err := h.journalService.Entries(rider)
	if err != nil {
		slog.Error("failed to load entries", "error", err, "rider_id", rider.ID)
		http.Error(w, "Failed to load journal", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "dashboard.html", "Journal", &struct {
		Entries []*model.Entry
	}{Entries: entries})
}

type entryFormPage struct {
	Error string
	Text  string
}

func (h *JournalHandler) NewEntryPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "entry_form.html", "New Entry", &entryFormPage{})
}

func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())

	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		ui.Render(w, r, "entry_form.html", "New Entry", &entryFormPage{Error: "Upload too large or malformed."})
		return
	}

	text := r.FormValue("text")

	image, header, err := r.FormFile("image")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		ui.Render(w, r, "entry_form.html", "New Entry", &entryFormPage{Error: "Could not read the uploaded photo.", Text: text})
		return
	}
	if image != nil {
		defer image.Close()
	}

	_, err = h.journalService.CreateEntry(rider, text, image, header)
	if err != nil {
		slog.Warn("failed to create entry", "error", err, "rider_id", rider.ID)
		ui.Render(w, r, "entry_form.html", "New Entry", &entryFormPage{Error: err.Error(), Text: text})
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Entry saved.")
	http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
}

// EntryDetail shows one of the rider's own entries. Another rider's entry is
// refused with a permission message and a bounce back to the dashboard.
func (h *JournalHandler) EntryDetail(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	entryID := r.PathValue("id")

	entry, comments, err := h.journalService.Entry(rider, entryID)
	if err != nil {
		if errors.Is(err, service.ErrNotOwner) {
			ui.SetFlash(w, r, ui.FlashError, "You don't have permission to view this entry.")
			http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
			return
		}
		if errors.Is(err, repository.ErrEntryNotFound) {
			notFound(w, r)
			return
		}
		slog.Error("failed to load entry", "error", err, "entry_id", entryID)
		http.Error(w, "Failed to load entry", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "entry_detail.html", "Journal Entry", &struct {
		Entry    *model.Entry
		Comments []*model.Comment
		ImageURL string
	}{
		Entry:    entry,
		Comments: comments,
		ImageURL: h.journalService.ImageURL(entry.ImagePath),
	})
}

// Alert flags the entry for Michelle and sends the notification email. A
// failed send still leaves the flag set and tells the rider so.
func (h *JournalHandler) Alert(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	entryID := r.PathValue("id")

	_, err := h.journalService.Alert(rider, entryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotOwner):
			ui.SetFlash(w, r, ui.FlashError, "You don't have permission to modify this entry.")
			http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
			return
		case errors.Is(err, repository.ErrEntryNotFound):
			notFound(w, r)
			return
		case errors.Is(err, service.ErrNotificationFailed):
			ui.SetFlash(w, r, ui.FlashWarning, "Michelle has been alerted, but the notification email could not be sent.")
		default:
			slog.Error("failed to alert entry", "error", err, "entry_id", entryID)
			http.Error(w, "Failed to alert Michelle", http.StatusInternalServerError)
			return
		}
	} else {
		ui.SetFlash(w, r, ui.FlashSuccess, "Michelle has been alerted.")
	}

	http.Redirect(w, r, "/entry/"+entryID+"/", http.StatusSeeOther)
}
