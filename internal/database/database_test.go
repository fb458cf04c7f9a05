package database

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestAutoMigratePersistentModels(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(PersistentModels()...))

	for _, table := range []string{"users", "posts", "comments", "likes", "follows"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %q to exist", table)
	}
}

// The SQL schema must not declare columns the GORM models lack; such
// columns would stay NULL forever under postgres while being absent under
// AutoMigrate. Like and Follow carry no UpdatedAt.
func TestInitialSchemaMatchesModelColumns(t *testing.T) {
	first := GetMigrationByVersion(1)
	require.NotNil(t, first)

	tableRe := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\);`)
	for _, m := range tableRe.FindAllStringSubmatch(first.UpScript, -1) {
		table, body := m[1], m[2]
		if table == "likes" || table == "follows" {
			assert.False(t, strings.Contains(body, "updated_at"),
				"table %q declares updated_at but its model has no UpdatedAt", table)
			assert.False(t, strings.Contains(body, "deleted_at"),
				"table %q declares deleted_at but its model is hard-deleted", table)
		}
	}
}

func TestRegisteredMigrationsAreOrdered(t *testing.T) {
	migrations := GetMigrations()
	require.NotEmpty(t, migrations)

	for i := 1; i < len(migrations); i++ {
		assert.Greater(t, migrations[i].Version, migrations[i-1].Version)
	}

	first := GetMigrationByVersion(migrations[0].Version)
	require.NotNil(t, first)
	assert.NotEmpty(t, first.UpScript)
	assert.NotEmpty(t, first.DownScript)
}
