package validation

import (
	"testing"

	"github.com/stablebook/stablebook/internal/model"
)

func TestValidateEvent(t *testing.T) {
	payload, err := ValidateEvent("  Spring show  ", " first outing ", model.EventTypeCompetition, "2025-06-10", "09:30")
	if err != nil {
		t.Fatalf("ValidateEvent() error = %v", err)
	}

	if payload.Title != "Spring show" {
		t.Errorf("Title = %q, want trimmed", payload.Title)
	}
	if payload.Description != "first outing" {
		t.Errorf("Description = %q, want trimmed", payload.Description)
	}
	if payload.Time == nil || *payload.Time != "09:30" {
		t.Errorf("Time = %v, want 09:30", payload.Time)
	}
}

func TestValidateEventOptionalTime(t *testing.T) {
	payload, err := ValidateEvent("Farrier", "", model.EventTypeFarrier, "2025-06-10", "")
	if err != nil {
		t.Fatalf("ValidateEvent() error = %v", err)
	}
	if payload.Time != nil {
		t.Errorf("Time = %v, want nil for empty input", payload.Time)
	}
}

func TestValidateEventRejections(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		eventType string
		date      string
		time      string
	}{
		{"empty title", "", model.EventTypeOther, "2025-06-10", ""},
		{"whitespace title", "   ", model.EventTypeOther, "2025-06-10", ""},
		{"bad type", "Show", "party", "2025-06-10", ""},
		{"bad date", "Show", model.EventTypeOther, "10/06/2025", ""},
		{"bad time", "Show", model.EventTypeOther, "2025-06-10", "9 am"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateEvent(tt.title, "", tt.eventType, tt.date, tt.time)
			if err == nil {
				t.Error("ValidateEvent() accepted invalid input")
			}
		})
	}
}

func TestValidateGoal(t *testing.T) {
	payload, err := ValidateGoal("  Sitting trot  ", "  no stirrups  ")
	if err != nil {
		t.Fatalf("ValidateGoal() error = %v", err)
	}
	if payload.Title != "Sitting trot" || payload.Description != "no stirrups" {
		t.Errorf("payload = %+v, want trimmed fields", payload)
	}

	_, err = ValidateGoal("   ", "desc")
	if err == nil {
		t.Error("ValidateGoal() accepted blank title")
	}
}
