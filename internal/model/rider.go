package model

import (
	"time"
)

type Rider struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	HorseID   string    `db:"horse_id"`
	CreatedAt time.Time `db:"created_at"`

	// HorseName is populated by queries that join horses; empty otherwise.
	HorseName string `db:"horse_name"`
}
