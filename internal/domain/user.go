package domain

import "time"

// User is an administrative account. Password holds the bcrypt hash
// and never leaves the service layer.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserInput carries the mutable fields of an account. Password is
// plaintext here; it is hashed before it reaches storage. Empty
// fields are left unchanged on update.
type UserInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}
