package entity

// User is the part of a user record that authorization depends on.
// Email is the sole key between a token's claim and the stored role;
// the remaining profile fields are kept as an opaque Document.
type User struct {
	ID    string
	Email string
	Role  Role
}

// User document field names.
const (
	UserEmailField = "email"
	UserRoleField  = "role"
)
