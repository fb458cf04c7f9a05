// Package access implements the visibility and authorization rules that gate
// every read and write of posts, comments, likes and follows.
package access

import "connectly/internal/models"

// Viewer is the acting identity for a request: either anonymous, or an
// authenticated user with its current role.
type Viewer struct {
	ID            uint
	Role          models.Role
	Authenticated bool
}

// Anonymous returns the unauthenticated viewer.
func Anonymous() Viewer {
	return Viewer{}
}

// NewViewer returns an authenticated viewer for the given user.
func NewViewer(u *models.User) Viewer {
	return Viewer{ID: u.ID, Role: u.Role, Authenticated: true}
}

// Elevated reports whether the viewer holds a moderator or admin role.
// Anonymous viewers are never elevated.
func (v Viewer) Elevated() bool {
	return v.Authenticated && v.Role.Elevated()
}
