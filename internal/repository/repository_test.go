package repository

import (
	"context"
	"testing"

	"connectly/internal/access"
	"connectly/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRepoDB creates an in-memory SQLite database with the full schema.
func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
	))
	return db
}

// setupMockDB creates a GORM DB backed by sqlmock for asserting the exact
// SQL issued against the postgres dialect.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     models.RoleUser,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPost(t *testing.T, db *gorm.DB, userID uint, content string, privacy models.Privacy) *models.Post {
	t.Helper()
	p := &models.Post{Content: content, Privacy: privacy, UserID: userID}
	require.NoError(t, db.Create(p).Error)
	return p
}

func viewerFor(u *models.User) access.Viewer {
	return access.NewViewer(u)
}

func ctx() context.Context {
	return context.Background()
}
