package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/stablebook/stablebook/internal/ctxkeys"
	"github.com/stablebook/stablebook/internal/model"
	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/service"
)

// Session resolves the session cookie into request-scoped role state:
// an authenticated rider, a trainer flag, or an admin flag. Exactly one role
// per session. A stale rider id (rider deleted after login) clears the
// cookie and falls through as not logged in rather than erroring.
func Session(authService *service.AuthService, riders RiderLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := service.SessionCookie(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.VerifySession(token)
			if err != nil {
				authService.ClearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			switch claims.Role {
			case service.RoleRider:
				rider, err := riders.ByID(claims.RiderID)
				if errors.Is(err, repository.ErrRiderNotFound) {
					authService.ClearSessionCookie(w)
					next.ServeHTTP(w, r)
					return
				}
				if err != nil {
					slog.Error("failed to resolve session rider", "error", err, "rider_id", claims.RiderID)
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				next.ServeHTTP(w, r.WithContext(ctxkeys.WithRider(r.Context(), rider)))

			case service.RoleTrainer:
				next.ServeHTTP(w, r.WithContext(ctxkeys.WithTrainer(r.Context())))

			case service.RoleAdmin:
				next.ServeHTTP(w, r.WithContext(ctxkeys.WithAdmin(r.Context())))

			default:
				authService.ClearSessionCookie(w)
				next.ServeHTTP(w, r)
			}
		})
	}
}

// RiderLoader is the slice of the rider repository the session middleware
// needs to resolve a rider id.
type RiderLoader interface {
	ByID(id string) (*model.Rider, error)
}

// RequireRider redirects to the rider login when no rider is authenticated.
func RequireRider(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.Rider(r.Context()) == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireTrainer redirects to the trainer login when the session lacks the
// trainer role.
func RequireTrainer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ctxkeys.IsTrainer(r.Context()) {
			http.Redirect(w, r, "/michelle/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireAdmin redirects to the management login when the session lacks the
// admin role.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !ctxkeys.IsAdmin(r.Context()) {
			http.Redirect(w, r, "/manage/login/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}
