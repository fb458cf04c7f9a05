// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Privacy is the visibility tier of a post.
type Privacy string

const (
	// PrivacyPublic posts are visible to everyone, including anonymous viewers.
	PrivacyPublic Privacy = "public"
	// PrivacyFollowers posts are visible to the author and the author's followers.
	PrivacyFollowers Privacy = "followers"
	// PrivacyPrivate posts are visible to the author only.
	PrivacyPrivate Privacy = "private"
)

// Valid reports whether p is one of the known privacy tiers.
func (p Privacy) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyFollowers, PrivacyPrivate:
		return true
	}
	return false
}

// Post represents a post in the Connectly application.
//
// Deletion is a soft delete: DeletedAt is set and GORM's default scope
// excludes the row from every read path, for every role.
type Post struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Content string  `gorm:"type:text;not null" json:"content"`
	Privacy Privacy `gorm:"type:varchar(20);not null;default:'public';index" json:"privacy"`
	UserID  uint    `gorm:"not null;index" json:"user_id"`
	User    User    `gorm:"foreignKey:UserID" json:"user"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// Deleted reports whether the post has been soft-deleted.
func (p *Post) Deleted() bool {
	return p.DeletedAt.Valid
}
