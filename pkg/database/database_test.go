package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SqliteFile(t *testing.T) {
	db, err := Open(Config{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "bakery.db"),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestOpen_SqliteIsTheDefaultDriver(t *testing.T) {
	db, err := Open(Config{
		Path: filepath.Join(t.TempDir(), "bakery.db"),
	})
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "oracle"})
	assert.Error(t, err)
}
