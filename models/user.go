package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the session identity. Passwords never live here; the mock
// credential table in the auth package keeps them separately.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user may use the admin panel.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
