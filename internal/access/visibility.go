package access

import (
	"connectly/internal/models"

	"gorm.io/gorm"
)

// CanView decides whether viewer may read post. followsAuthor reports whether
// a follow edge (follower=viewer, following=post author) exists; it is only
// consulted for the followers tier.
//
// The deleted check runs first: soft-deleted posts are invisible to everyone,
// including the author and elevated roles.
func CanView(viewer Viewer, post *models.Post, followsAuthor bool) bool {
	if post.Deleted() {
		return false
	}
	if post.Privacy == models.PrivacyPublic {
		return true
	}
	if !viewer.Authenticated {
		return false
	}
	if viewer.Elevated() {
		return true
	}
	switch post.Privacy {
	case models.PrivacyPrivate:
		return post.UserID == viewer.ID
	case models.PrivacyFollowers:
		return post.UserID == viewer.ID || followsAuthor
	}
	return false
}

// VisibleScope returns a GORM scope restricting a posts query to the set of
// posts viewer may see. It is the bulk equivalent of applying CanView to
// every non-deleted post: soft-deleted rows are already excluded by GORM's
// default scope, so only the privacy tiers are filtered here.
func VisibleScope(viewer Viewer) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if viewer.Elevated() {
			return db
		}
		if !viewer.Authenticated {
			return db.Where("posts.privacy = ?", models.PrivacyPublic)
		}
		return db.Where(
			"posts.user_id = ? OR posts.privacy = ? OR (posts.privacy = ? AND posts.user_id IN (SELECT following_id FROM follows WHERE follower_id = ?))",
			viewer.ID,
			models.PrivacyPublic,
			models.PrivacyFollowers, viewer.ID,
		)
	}
}

// VisiblePostScope restricts a comments or likes query to rows whose parent
// post is currently visible to viewer. Visibility is inherited from the
// post's present state, so comments on a since-privatized post disappear with
// it.
func VisiblePostScope(viewer Viewer) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Post{}).
			Select("posts.id").
			Scopes(VisibleScope(viewer))
		return db.Where("post_id IN (?)", sub)
	}
}
