package Models

import (
	"gorm.io/gorm"
)

// User roles. ADMIN is the manager/owner role, OPERATOR covers
// technicians, mechanics and everyone else on the floor.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

type User struct {
	gorm.Model
	Name       string `json:"name" gorm:"not null"`
	Username   string `json:"username" gorm:"not null;uniqueIndex"`
	Email      string `json:"email" gorm:"uniqueIndex"`
	Password   []byte `json:"-"`
	Role       string `json:"role" gorm:"not null;default:OPERATOR"`
	Title      string `json:"title"`
	Shift      string `json:"shift"`
	Department string `json:"department"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
