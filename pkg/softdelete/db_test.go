package softdelete

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

type author struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Model
}

type book struct {
	ID       uint `gorm:"primaryKey"`
	AuthorID uint `gorm:"index"`
	Title    string
	Model
}

type chapter struct {
	ID     uint `gorm:"primaryKey"`
	BookID uint `gorm:"index"`
	Model
}

// review has no soft delete columns.
type review struct {
	ID       uint `gorm:"primaryKey"`
	AuthorID uint `gorm:"index"`
	Body     string
}

// fan is soft deletable but linked with SET NULL.
type fan struct {
	ID       uint  `gorm:"primaryKey"`
	AuthorID *uint `gorm:"index"`
	Model
}

// orphan is never migrated, so any write to it fails.
type orphan struct {
	ID       uint `gorm:"primaryKey"`
	AuthorID uint
	Model
}

func authorKey(a *author) any { return a.ID }
func bookKey(b *book) any     { return b.ID }

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

	require.NoError(t, db.AutoMigrate(&author{}, &book{}, &chapter{}, &review{}, &fan{}))
	return db
}

func newTestRegistry() *Registry {
	reg := NewRegistry()
	Register(reg,
		HasMany[author, book]("Books", "author_id", Cascade, authorKey),
		HasMany[author, review]("Reviews", "author_id", Cascade, authorKey),
		HasMany[author, fan]("Fans", "author_id", SetNull, authorKey),
	)
	Register(reg,
		HasMany[book, chapter]("Chapters", "book_id", Cascade, bookKey),
	)
	return reg
}

// countUpdates registers a callback counting UPDATE statements issued on db.
func countUpdates(t *testing.T, db *gorm.DB) *int {
	t.Helper()
	var n int
	err := db.Callback().Update().Before("gorm:update").Register("test:count_updates", func(*gorm.DB) {
		n++
	})
	require.NoError(t, err)
	return &n
}

func seedAuthor(t *testing.T, db *gorm.DB, books int) *author {
	t.Helper()
	a := &author{Name: "Ursula"}
	require.NoError(t, db.Create(a).Error)
	for i := 0; i < books; i++ {
		b := &book{AuthorID: a.ID, Title: fmt.Sprintf("book-%d", i)}
		require.NoError(t, db.Create(b).Error)
		require.NoError(t, db.Create(&chapter{BookID: b.ID}).Error)
	}
	return a
}

func reloadAuthor(t *testing.T, db *gorm.DB, id uint) *author {
	t.Helper()
	var a author
	require.NoError(t, db.First(&a, id).Error)
	return &a
}
