// Package repository provides data access layer implementations for the application.
package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// from the underlying store. The database index is the authoritative guard
// for duplicate follows and likes; application pre-checks only narrow the
// race window, so concurrent creates still surface here and must be
// translated to the duplicate error code.
//
// String matching covers drivers (postgres, sqlite) whose errors GORM does
// not translate to ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "unique constraint failed")
}
