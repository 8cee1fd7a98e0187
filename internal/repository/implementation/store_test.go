package implementation

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// The models carry postgres column types, so the tables are declared by hand.
var testSchema = []string{
	`CREATE TABLE notebooks (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		parent_id TEXT,
		user_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		is_deleted NUMERIC NOT NULL DEFAULT false,
		deleted_at DATETIME
	)`,
	`CREATE TABLE notes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT,
		notebook_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		is_deleted NUMERIC NOT NULL DEFAULT false,
		deleted_at DATETIME
	)`,
	`CREATE TABLE note_embeddings (
		id TEXT PRIMARY KEY,
		document TEXT,
		embedding_value TEXT,
		metadata TEXT,
		note_id TEXT NOT NULL,
		chunk_index INTEGER DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		is_deleted NUMERIC NOT NULL DEFAULT false,
		deleted_at DATETIME
	)`,
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}
