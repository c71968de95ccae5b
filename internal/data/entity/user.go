package entity

import "github.com/google/uuid"

type UserRole string

const (
	RoleUser       UserRole = "user"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "super_admin"
)

// IsStaff reports whether the role manages the catalogue and reservations.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	IsVerified   bool     `db:"is_verified"`
}

type Profile struct {
	BaseNoDelete
	UserID  uuid.UUID `db:"user_id"`
	Phone   *string   `db:"phone"`
	Address *string   `db:"address"`
}
