package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/stablebook/stablebook/internal/repository"
	"github.com/stablebook/stablebook/internal/service"
)

type APIHandler struct {
	rosterService *service.RosterService
}

func NewAPIHandler(rosterService *service.RosterService) *APIHandler {
	return &APIHandler{rosterService: rosterService}
}

type riderJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RidersForHorse returns the riders of one horse as JSON, backing the login
// selector. An unknown horse id is a 404; a known horse with no riders is an
// empty array.
func (h *APIHandler) RidersForHorse(w http.ResponseWriter, r *http.Request) {
	horseID := r.PathValue("horse_id")

	riders, err := h.rosterService.RidersForHorse(horseID)
	if err != nil {
		if errors.Is(err, repository.ErrHorseNotFound) {
			http.Error(w, `{"error":"horse not found"}`, http.StatusNotFound)
			return
		}
		slog.Error("failed to load riders for horse", "error", err, "horse_id", horseID)
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}

	out := make([]riderJSON, 0, len(riders))
	for _, rider := range riders {
		out = append(out, riderJSON{ID: rider.ID, Name: rider.Name})
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(out)
	if err != nil {
		slog.Error("failed to encode riders", "error", err)
	}
}
