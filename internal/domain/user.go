package domain

// Role is the access level recorded on a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// DefaultRole is assigned when a user is created without a recognised role.
const DefaultRole = RoleUser

// Roles lists every accepted role value.
var Roles = []Role{RoleAdmin, RoleUser}

// User represents a registered person
type User struct {
	Record
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
