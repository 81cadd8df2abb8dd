package models

import "time"

// NotificationDB represents a notification record in the database.
// Feed order is created_at ascending, oldest first.
type NotificationDB struct {
	NotificationID int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	Message        string    `json:"message" db:"message"`
	IsRead         bool      `json:"is_read" db:"is_read"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
