package model

import (
	"time"
)

// Entry is a rider's journal record of a riding session. Text and image are
// both optional. AlertedMichelle flips to true when the rider asks the
// trainer for feedback and is never reset by the rider.
type Entry struct {
	ID              string    `db:"id"`
	RiderID         string    `db:"rider_id"`
	TextContent     string    `db:"text_content"`
	ImagePath       *string   `db:"image_path"`
	AlertedMichelle bool      `db:"alerted_michelle"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`

	// Populated by trainer dashboard queries that join riders/horses.
	RiderName    string `db:"rider_name"`
	HorseName    string `db:"horse_name"`
	CommentCount int    `db:"comment_count"`
}

// Preview returns the first 300 characters of the entry text for the
// notification email, with an ellipsis only when truncated.
func (e *Entry) Preview() string {
	if e.TextContent == "" {
		return "(No text content)"
	}
	runes := []rune(e.TextContent)
	if len(runes) <= 300 {
		return e.TextContent
	}
	return string(runes[:300]) + "..."
}
