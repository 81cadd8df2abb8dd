package models

import "time"

// StrategyDB represents a strategy document record in the database.
// The observed product flow keeps at most one strategy per user, but the
// schema does not enforce that.
type StrategyDB struct {
	StrategyID  int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	ProductName string    `json:"product_name" db:"product_name"`
	Author      string    `json:"author" db:"author"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
