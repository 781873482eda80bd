package entity

// UserRole separates the back-office operator from store owners.
type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleDropshipper UserRole = "dropshipper"
)

// User represents a back-office account. PasswordHash never leaves the
// process; handlers respond with SanitizedUser.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
}

// SanitizedUser is the wire representation of a user.
type SanitizedUser struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// Sanitize strips credentials for API responses.
func (u User) Sanitize() SanitizedUser {
	return SanitizedUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
