package routes

import (
	"net/http"

	"github.com/stablebook/stablebook/internal/app"
	"github.com/stablebook/stablebook/internal/handler"
	"github.com/stablebook/stablebook/internal/middleware"
)

// SetupRoutes assembles the full route table with the shared middleware
// chain: config injection, request ids, request logging, CSRF protection,
// and session resolution. Login POST routes carry an extra rate limit.
func SetupRoutes(a *app.App) http.Handler {
	sessionHandler := handler.NewSessionHandler(a.AuthService, a.RosterService)
	apiHandler := handler.NewAPIHandler(a.RosterService)
	journalHandler := handler.NewJournalHandler(a.JournalService)
	calendarHandler := handler.NewCalendarHandler(a.CalendarService)
	goalHandler := handler.NewGoalHandler(a.GoalService)
	trainerHandler := handler.NewTrainerHandler(a.AuthService, a.ReviewService, a.CalendarService)
	adminHandler := handler.NewAdminHandler(a.AuthService, a.RosterService)

	rateLimited := middleware.RateLimitLogin()

	mux := http.NewServeMux()

	// Rider login and session
	mux.HandleFunc("GET /{$}", sessionHandler.LoginPage)
	mux.HandleFunc("POST /{$}", rateLimited(sessionHandler.Login))
	mux.HandleFunc("POST /logout/{$}", sessionHandler.Logout)

	// Login selector support API
	mux.HandleFunc("GET /api/riders/{horse_id}/{$}", apiHandler.RidersForHorse)

	// Rider journal
	mux.HandleFunc("GET /dashboard/{$}", middleware.RequireRider(journalHandler.Dashboard))
	mux.HandleFunc("GET /entry/new/{$}", middleware.RequireRider(journalHandler.NewEntryPage))
	mux.HandleFunc("POST /entry/new/{$}", middleware.RequireRider(journalHandler.CreateEntry))
	mux.HandleFunc("GET /entry/{id}/{$}", middleware.RequireRider(journalHandler.EntryDetail))
	mux.HandleFunc("POST /entry/{id}/alert/{$}", middleware.RequireRider(journalHandler.Alert))

	// Rider calendar
	mux.HandleFunc("GET /calendar/{$}", middleware.RequireRider(calendarHandler.Month))
	mux.HandleFunc("GET /calendar/event/add/{$}", middleware.RequireRider(calendarHandler.AddEventPage))
	mux.HandleFunc("POST /calendar/event/add/{$}", middleware.RequireRider(calendarHandler.CreateEvent))
	mux.HandleFunc("GET /calendar/event/{id}/edit/{$}", middleware.RequireRider(calendarHandler.EditEventPage))
	mux.HandleFunc("POST /calendar/event/{id}/edit/{$}", middleware.RequireRider(calendarHandler.UpdateEvent))
	mux.HandleFunc("POST /calendar/event/{id}/delete/{$}", middleware.RequireRider(calendarHandler.DeleteEvent))

	// Rider goals
	mux.HandleFunc("GET /goals/{$}", middleware.RequireRider(goalHandler.List))
	mux.HandleFunc("GET /goals/add/{$}", middleware.RequireRider(goalHandler.AddPage))
	mux.HandleFunc("POST /goals/add/{$}", middleware.RequireRider(goalHandler.Create))
	mux.HandleFunc("GET /goals/{id}/edit/{$}", middleware.RequireRider(goalHandler.EditPage))
	mux.HandleFunc("POST /goals/{id}/edit/{$}", middleware.RequireRider(goalHandler.Update))
	mux.HandleFunc("POST /goals/{id}/complete/{$}", middleware.RequireRider(goalHandler.Complete))
	mux.HandleFunc("POST /goals/{id}/reactivate/{$}", middleware.RequireRider(goalHandler.Reactivate))
	mux.HandleFunc("GET /goals/{id}/delete/{$}", middleware.RequireRider(goalHandler.DeletePage))
	mux.HandleFunc("POST /goals/{id}/delete/{$}", middleware.RequireRider(goalHandler.Delete))

	// Trainer
	mux.HandleFunc("GET /michelle/{$}", trainerHandler.LoginPage)
	mux.HandleFunc("POST /michelle/{$}", rateLimited(trainerHandler.Login))
	mux.HandleFunc("POST /michelle/logout/{$}", trainerHandler.Logout)
	mux.HandleFunc("GET /michelle/dashboard/{$}", middleware.RequireTrainer(trainerHandler.Dashboard))
	mux.HandleFunc("GET /michelle/entry/{id}/{$}", middleware.RequireTrainer(trainerHandler.Entry))
	mux.HandleFunc("POST /michelle/entry/{id}/{$}", middleware.RequireTrainer(trainerHandler.AddComment))
	mux.HandleFunc("GET /michelle/calendar/{$}", middleware.RequireTrainer(trainerHandler.Calendar))

	// Management
	mux.HandleFunc("GET /manage/login/{$}", adminHandler.LoginPage)
	mux.HandleFunc("POST /manage/login/{$}", rateLimited(adminHandler.Login))
	mux.HandleFunc("GET /manage/horses/{$}", middleware.RequireAdmin(adminHandler.Horses))
	mux.HandleFunc("POST /manage/horses/{$}", middleware.RequireAdmin(adminHandler.CreateHorse))
	mux.HandleFunc("POST /manage/horses/{id}/delete/{$}", middleware.RequireAdmin(adminHandler.DeleteHorse))
	mux.HandleFunc("GET /manage/riders/{$}", middleware.RequireAdmin(adminHandler.Riders))
	mux.HandleFunc("POST /manage/riders/{$}", middleware.RequireAdmin(adminHandler.CreateRider))
	mux.HandleFunc("POST /manage/riders/{id}/delete/{$}", middleware.RequireAdmin(adminHandler.DeleteRider))

	// Catch-all 404
	mux.HandleFunc("/", handler.NotFound)

	return middleware.Chain(
		mux,
		middleware.Config(a.Cfg),
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.Session(a.AuthService, a.RiderRepo),
	)
}
