package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/stablebook/stablebook/internal/ctxkeys"
	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/service"
	"github.com/stablebook/stablebook/internal/ui"
)

type SessionHandler struct {
	authService   *service.AuthService
	rosterService *service.RosterService
}

func NewSessionHandler(authService *service.AuthService, rosterService *service.RosterService) *SessionHandler {
	return &SessionHandler{
		authService:   authService,
		rosterService: rosterService,
	}
}

type loginPage struct {
	Horses []*model.Horse
	Error  string
}

// LoginPage shows the horse/rider selector. An already signed-in session is
// sent straight to its home page.
func (h *SessionHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if ctxkeys.Rider(r.Context()) != nil {
		http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
		return
	}
	if ctxkeys.IsTrainer(r.Context()) {
		http.Redirect(w, r, "/michelle/dashboard/", http.StatusSeeOther)
		return
	}
	if ctxkeys.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/manage/horses/", http.StatusSeeOther)
		return
	}

	h.renderLogin(w, r, "")
}

func (h *SessionHandler) renderLogin(w http.ResponseWriter, r *http.Request, errMsg string) {
	horses, err := h.rosterService.Horses()
	if err != nil {
		slog.Error("failed to load horses for login", "error", err)
		http.Error(w, "Failed to load horses", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, "login.html", "Sign In", &loginPage{Horses: horses, Error: errMsg})
}

// Login resolves the selected horse/rider pair into a rider session. Any
// invalid pair fails with the same message.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	rider, err := h.authService.SelectRider(r.FormValue("horse_id"), r.FormValue("rider_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidSelection) {
			h.renderLogin(w, r, "Invalid selection.")
			return
		}
		slog.Error("rider login failed", "error", err)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	token, err := h.authService.GenerateSession(service.RoleRider, rider.ID)
	if err != nil {
		slog.Error("failed to generate session", "error", err, "rider_id", rider.ID)
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	h.authService.SetSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
}

// Logout clears any session and returns to the selector.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
