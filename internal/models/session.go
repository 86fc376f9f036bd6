package models

import "time"

// Session is an authenticated admin session. The token is an opaque value
// handed to the browser as a cookie.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}
