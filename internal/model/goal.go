package model

import (
	"time"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

// Goal is a rider-authored objective. CompletedAt is set exactly when
// Status is completed and nil while active.
type Goal struct {
	ID          string     `db:"id"`
	RiderID     string     `db:"rider_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Status      string     `db:"status"`
	CompletedAt *time.Time `db:"completed_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (g *Goal) Completed() bool {
	return g.Status == GoalStatusCompleted
}
