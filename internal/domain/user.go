package domain

import "time"

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered portal account.
//
// The username is the unique login handle; the ID is the stable identity
// carried in tokens and bookmark ownership.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	// PasswordHash is the bcrypt hash of the password. It never leaves the
	// server.
	PasswordHash string `json:"passwordHash"`

	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary is the client-visible projection of a user, returned on login.
type Summary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// Summary strips everything a client has no business seeing.
func (u *User) Summary() Summary {
	return Summary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}
