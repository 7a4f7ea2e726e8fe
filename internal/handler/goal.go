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
	"github.com/stablebook/stablebook/internal/validation"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())

	goals, err := h.goalService.Goals(rider)
	if err != nil {
		slog.Error("failed to load goals", "error", err, "rider_id", rider.ID)
		http.Error(w, "Failed to load goals", http.StatusInternalServerError)
		return
	}

	var active, completed []*model.Goal
	for _, goal := range goals {
		if goal.Completed() {
			completed = append(completed, goal)
		} else {
			active = append(active, goal)
		}
	}

	ui.Render(w, r, "goals.html", "Goals", &struct {
		Active    []*model.Goal
		Completed []*model.Goal
	}{Active: active, Completed: completed})
}

type goalFormPage struct {
	Heading     string
	Action      string
	Error       string
	Title       string
	Description string
}

func (h *GoalHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, "goal_form.html", "Add Goal", &goalFormPage{
		Heading: "Add goal",
		Action:  "/goals/add/",
	})
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())

	payload, err := validation.ValidateGoal(r.FormValue("title"), r.FormValue("description"))
	if err != nil {
		ui.Render(w, r, "goal_form.html", "Add Goal", &goalFormPage{
			Heading:     "Add goal",
			Action:      "/goals/add/",
			Error:       err.Error(),
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
		})
		return
	}

	_, err = h.goalService.Create(rider, payload)
	if err != nil {
		slog.Error("failed to create goal", "error", err, "rider_id", rider.ID)
		http.Error(w, "Failed to create goal", http.StatusInternalServerError)
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Goal added.")
	http.Redirect(w, r, "/goals/", http.StatusSeeOther)
}

func (h *GoalHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.Goal(rider, goalID)
	if err != nil {
		h.goalError(w, r, err, goalID)
		return
	}

	ui.Render(w, r, "goal_form.html", "Edit Goal", &goalFormPage{
		Heading:     "Edit goal",
		Action:      "/goals/" + goal.ID + "/edit/",
		Title:       goal.Title,
		Description: goal.Description,
	})
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	goalID := r.PathValue("id")

	payload, err := validation.ValidateGoal(r.FormValue("title"), r.FormValue("description"))
	if err != nil {
		ui.Render(w, r, "goal_form.html", "Edit Goal", &goalFormPage{
			Heading:     "Edit goal",
			Action:      "/goals/" + goalID + "/edit/",
			Error:       err.Error(),
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
		})
		return
	}

	_, err = h.goalService.Update(rider, goalID, payload)
	if err != nil {
		h.goalError(w, r, err, goalID)
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Goal updated.")
	http.Redirect(w, r, "/goals/", http.StatusSeeOther)
}

func (h *GoalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	goalID := r.PathValue("id")

	_, err := h.goalService.Complete(rider, goalID)
	if err != nil {
		h.goalError(w, r, err, goalID)
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Goal completed. Nice work!")
	http.Redirect(w, r, "/goals/", http.StatusSeeOther)
}

func (h *GoalHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	goalID := r.PathValue("id")

	_, err := h.goalService.Reactivate(rider, goalID)
	if err != nil {
		h.goalError(w, r, err, goalID)
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Goal reactivated.")
	http.Redirect(w, r, "/goals/", http.StatusSeeOther)
}

func (h *GoalHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.Goal(rider, goalID)
	if err != nil {
		h.goalError(w, r, err, goalID)
		return
	}

	ui.Render(w, r, "goal_delete.html", "Delete Goal", &struct {
		Goal *model.Goal
	}{Goal: goal})
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rider := ctxkeys.Rider(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(rider, goalID)
	if err != nil {
		h.goalError(w, r, err, goalID)
		return
	}

	ui.SetFlash(w, r, ui.FlashSuccess, "Goal deleted.")
	http.Redirect(w, r, "/goals/", http.StatusSeeOther)
}

// goalError maps goal failures to responses. Goal lookups are rider scoped,
// so another rider's goal simply does not exist here.
func (h *GoalHandler) goalError(w http.ResponseWriter, r *http.Request, err error, goalID string) {
	if errors.Is(err, repository.ErrGoalNotFound) {
		notFound(w, r)
		return
	}
	slog.Error("goal operation failed", "error", err, "goal_id", goalID)
	http.Error(w, "Failed to update goals", http.StatusInternalServerError)
}
