package models

import "time"

// User is the single admin identity. The schema allows at most one row.
type User struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
