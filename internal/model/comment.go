package model

import (
	"time"
)

type Comment struct {
	ID        string    `db:"id"`
	EntryID   string    `db:"entry_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}
