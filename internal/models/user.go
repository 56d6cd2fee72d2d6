package models

import "time"

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	PassHash  string    `json:"-"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}
