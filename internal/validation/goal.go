package validation

import (
	"errors"
	"strings"
)

// GoalPayload is a validated goal form submission.
type GoalPayload struct {
	Title       string
	Description string
}

func ValidateGoal(title, description string) (*GoalPayload, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	if len(title) > 200 {
		return nil, errors.New("title is too long (max 200 characters)")
	}

	return &GoalPayload{
		Title:       title,
		Description: strings.TrimSpace(description),
	}, nil
}
