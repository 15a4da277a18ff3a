package models

import "time"

type Journal struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Title      string    `json:"title"`
	Year       int       `json:"year"`
	Color      string    `json:"color"`
	EntryCount int64     `json:"entry_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (j *Journal) IsOwnedBy(userID int64) bool {
	return j != nil && j.UserID == userID
}
