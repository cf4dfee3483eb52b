package entity

// Role is the authorization attribute stored on a user record.
// Users are created as RoleNormal and can only ever be promoted.
type Role string

const (
	RoleNormal Role = "normal"
	RoleAdmin  Role = "admin"
)

func (r Role) IsAdmin() bool { return r == RoleAdmin }
