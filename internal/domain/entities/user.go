package entities

import "time"

// User is identified by e-mail, the identity carried in bearer tokens.
type User struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
