package softdelete

import (
	"time"

	"gorm.io/gorm"
)

// QuerySet is an immutable, filterable view over records of type T. Every
// filter returns a new view; the receiver is never modified.
type QuerySet[T any] struct {
	db *gorm.DB
}

func newQuerySet[T any](db *gorm.DB) *QuerySet[T] {
	return &QuerySet[T]{db: db.Model(new(T)).Session(&gorm.Session{})}
}

// Query returns the unfiltered view of T on db.
func Query[T any](db *gorm.DB) *QuerySet[T] {
	return newQuerySet[T](db)
}

func (q *QuerySet[T]) derive(db *gorm.DB) *QuerySet[T] {
	return &QuerySet[T]{db: db.Session(&gorm.Session{})}
}

// DB exposes the underlying query for anything the wrapper does not cover.
func (q *QuerySet[T]) DB() *gorm.DB {
	return q.db
}

func (q *QuerySet[T]) Active() *QuerySet[T] {
	return q.derive(q.db.Where(ColumnIsDeleted+" = ?", false))
}

func (q *QuerySet[T]) Deleted() *QuerySet[T] {
	return q.derive(q.db.Where(ColumnIsDeleted+" = ?", true))
}

func (q *QuerySet[T]) Where(query any, args ...any) *QuerySet[T] {
	return q.derive(q.db.Where(query, args...))
}

func (q *QuerySet[T]) Scopes(funcs ...func(*gorm.DB) *gorm.DB) *QuerySet[T] {
	return q.derive(q.db.Scopes(funcs...))
}

func (q *QuerySet[T]) Order(value any) *QuerySet[T] {
	return q.derive(q.db.Order(value))
}

func (q *QuerySet[T]) Limit(limit int) *QuerySet[T] {
	return q.derive(q.db.Limit(limit))
}

func (q *QuerySet[T]) Offset(offset int) *QuerySet[T] {
	return q.derive(q.db.Offset(offset))
}

func (q *QuerySet[T]) Find() ([]*T, error) {
	var out []*T
	if err := q.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// First returns gorm.ErrRecordNotFound when the view is empty.
func (q *QuerySet[T]) First() (*T, error) {
	var out T
	if err := q.db.First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (q *QuerySet[T]) Count() (int64, error) {
	var n int64
	if err := q.db.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (q *QuerySet[T]) Exists() (bool, error) {
	n, err := q.Count()
	return n > 0, err
}

// Delete soft deletes every member of the view and returns the number of
// rows written. It does not touch related records.
func (q *QuerySet[T]) Delete() (int64, error) {
	return softDeleteAll(q.db, q.db.NowFunc())
}

// Restore clears the soft delete columns of every member of the view.
func (q *QuerySet[T]) Restore() (int64, error) {
	return restoreAll(q.db)
}

// HardDelete physically removes every member of the view. Irreversible.
func (q *QuerySet[T]) HardDelete() (int64, error) {
	res := q.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T))
	return res.RowsAffected, res.Error
}

func softDeleteAll(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Updates(map[string]any{
		ColumnIsDeleted: true,
		ColumnDeletedAt: now,
	})
	return res.RowsAffected, res.Error
}

func restoreAll(db *gorm.DB) (int64, error) {
	res := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Updates(map[string]any{
		ColumnIsDeleted: false,
		ColumnDeletedAt: nil,
	})
	return res.RowsAffected, res.Error
}
