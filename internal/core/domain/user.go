package domain

// User is an authenticated account holder. Only what the login flow and
// membership listings need; profile management lives elsewhere.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
