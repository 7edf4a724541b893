package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a stored credential record. Passwords are compared in plaintext;
// this mirrors the demo storefront being replaced and is documented existing
// behavior, not an endorsement.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Session is the single "current user" value. Absent session means
// anonymous.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
