package model

import (
	"time"
)

type Horse struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	PhotoPath *string   `db:"photo_path"`
	CreatedAt time.Time `db:"created_at"`
}
