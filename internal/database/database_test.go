package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, err := Connect(dsn)

	assert.NoError(t, err)
	assert.NotNil(t, db)

	// The connection must actually work, not just construct
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestConnect_SQLiteInMemory(t *testing.T) {
	db, err := Connect("file:connect_test?mode=memory&cache=shared")

	assert.NoError(t, err)
	assert.NotNil(t, db)
}
