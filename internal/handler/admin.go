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

// AdminHandler serves the roster management pages behind the admin password.
type AdminHandler struct {
	authService   *service.AuthService
	rosterService *service.RosterService
}

func NewAdminHandler(authService *service.AuthService, rosterService *service.RosterService) *AdminHandler {
	return &AdminHandler{
		authService:   authService,
		rosterService: rosterService,
	}
}

type adminLoginPage struct {
	Error string
}

func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if ctxkeys.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/manage/horses/", http.StatusSeeOther)
		return
	}
	ui.Render(w, r, "manage_login.html", "Management Sign In", &adminLoginPage{})
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	err := h.authService.LoginAdmin(r.FormValue("password"))
	if err != nil {
		ui.Render(w, r, "manage_login.html", "Management Sign In", &adminLoginPage{Error: "Incorrect password."})
		return
	}

	token, err := h.authService.GenerateSession(service.RoleAdmin, "")
	if err != nil {
		slog.Error("failed to generate admin session", "error", err)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	h.authService.SetSessionCookie(w, token)
	http.Redirect(w, r, "/manage/horses/", http.StatusSeeOther)
}

type horseRow struct {
	Horse    *model.Horse
	PhotoURL string
}

type horsesPage struct {
	Horses []horseRow
	Name   string
	Error  string
}

func (h *AdminHandler) Horses(w http.ResponseWriter, r *http.Request) {
	h.renderHorses(w, r, "", "")
}

func (h *AdminHandler) renderHorses(w http.ResponseWriter, r *http.Request, name, errMsg string) {
	horses, err := h.rosterService.Horses()
	if err != nil {
		slog.Error("failed to load horses", "error", err)
		http.Error(w, "Failed to load horses", http.StatusInternalServerError)
		return
	}

	rows := make([]horseRow, 0, len(horses))
	for _, horse := range horses {
		rows = append(rows, horseRow{
			Horse:    horse,
			PhotoURL: h.rosterService.PhotoURL(horse.PhotoPath),
		})
	}

	ui.Render(w, r, "manage_horses.html", "Horses", &horsesPage{Horses: rows, Name: name, Error: errMsg})
}

func (h *AdminHandler) CreateHorse(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		h.renderHorses(w, r, "", "Upload too large or malformed.")
		return
	}

	name := r.FormValue("name")

	photo, header, err := r.FormFile("photo")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		h.renderHorses(w, r, name, "Could not read the uploaded photo.")
		return
	}
	if photo != nil {
		defer photo.Close()
	}

	_, err = h.rosterService.CreateHorse(name, photo, header)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateHorse) {
			h.renderHorses(w, r, name, "A horse with that name already exists.")
			return
		}
		h.renderHorses(w, r, name, err.Error())
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Horse added.")
	http.Redirect(w, r, "/manage/horses/", http.StatusSeeOther)
}

// DeleteHorse removes the horse along with its riders, their journals and
// goals, and the horse's events.
func (h *AdminHandler) DeleteHorse(w http.ResponseWriter, r *http.Request) {
	horseID := r.PathValue("id")

	err := h.rosterService.DeleteHorse(horseID)
	if err != nil {
		if errors.Is(err, repository.ErrHorseNotFound) {
			notFound(w, r)
			return
		}
		slog.Error("failed to delete horse", "error", err, "horse_id", horseID)
		http.Error(w, "Failed to delete horse", http.StatusInternalServerError)
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Horse deleted.")
	http.Redirect(w, r, "/manage/horses/", http.StatusSeeOther)
}

type ridersPage struct {
	Riders []*model.Rider
	Horses []*model.Horse
	Name   string
	Error  string
}

func (h *AdminHandler) Riders(w http.ResponseWriter, r *http.Request) {
	h.renderRiders(w, r, "", "")
}

func (h *AdminHandler) renderRiders(w http.ResponseWriter, r *http.Request, name, errMsg string) {
	riders, err := h.rosterService.Riders()
	if err != nil {
		slog.Error("failed to load riders", "error", err)
		http.Error(w, "Failed to load riders", http.StatusInternalServerError)
		return
	}

	horses, err := h.rosterService.Horses()
	if err != nil {
		slog.Error("failed to load horses", "error", err)
		http.Error(w, "Failed to load horses", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "manage_riders.html", "Riders", &ridersPage{
		Riders: riders,
		Horses: horses,
		Name:   name,
		Error:  errMsg,
	})
}

func (h *AdminHandler) CreateRider(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")

	_, err := h.rosterService.CreateRider(name, r.FormValue("horse_id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrHorseNotFound):
			h.renderRiders(w, r, name, "Choose a horse for the rider.")
		case errors.Is(err, repository.ErrDuplicateRider):
			h.renderRiders(w, r, name, "That rider is already registered for that horse.")
		default:
			h.renderRiders(w, r, name, err.Error())
		}
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Rider added.")
	http.Redirect(w, r, "/manage/riders/", http.StatusSeeOther)
}

// DeleteRider removes a rider and cascades their entries and goals. Events
// the rider created stay on the calendar without a creator.
func (h *AdminHandler) DeleteRider(w http.ResponseWriter, r *http.Request) {
	riderID := r.PathValue("id")

	err := h.rosterService.DeleteRider(riderID)
	if err != nil {
		if errors.Is(err, repository.ErrRiderNotFound) {
			notFound(w, r)
			return
		}
		slog.Error("failed to delete rider", "error", err, "rider_id", riderID)
		http.Error(w, "Failed to delete rider", http.StatusInternalServerError)
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Rider deleted.")
	http.Redirect(w, r, "/manage/riders/", http.StatusSeeOther)
}
