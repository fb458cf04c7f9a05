// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the site-wide role of a user.
type Role string

const (
	// RoleUser is the default role for registered users.
	RoleUser Role = "user"
	// RoleModerator can view and mutate any non-deleted content.
	RoleModerator Role = "moderator"
	// RoleAdmin can additionally change user roles.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// Elevated reports whether the role bypasses ownership and privacy checks.
func (r Role) Elevated() bool {
	return r == RoleModerator || r == RoleAdmin
}

// User represents a registered account in the Connectly application.
//
// EncryptedPhone and EncryptedAddress hold ciphertext produced by the
// secure.Codec at the repository boundary; they are never serialized.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);not null;default:'user';index" json:"role"`
	Bio      string `json:"bio"`

	EncryptedPhone   []byte `gorm:"column:encrypted_phone" json:"-"`
	EncryptedAddress []byte `gorm:"column:encrypted_address" json:"-"`

	// Phone and Address carry the decrypted values in memory only.
	Phone   string `gorm:"-" json:"phone,omitempty"`
	Address string `gorm:"-" json:"address,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// IsModerator reports whether the user holds the moderator role.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
