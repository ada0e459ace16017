package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models a credential record. The bcrypt hash never leaves the API.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Pseudo       string    `json:"pseudo"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
