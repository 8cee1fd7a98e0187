package implementation

import (
	"context"

	"notes-softdelete/internal/repository/scope"
	"notes-softdelete/internal/repository/specification"
	"notes-softdelete/pkg/softdelete"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// softDeleteStore holds the queries shared by every repository whose model
// embeds softdelete.Model.
type softDeleteStore[T any, PT softdelete.Entity[T]] struct {
	db      *gorm.DB
	manager *softdelete.Manager[T, PT]
}

func newSoftDeleteStore[T any, PT softdelete.Entity[T]](db *gorm.DB, relations *softdelete.Registry, opts ...softdelete.Option) softDeleteStore[T, PT] {
	return softDeleteStore[T, PT]{
		db:      db,
		manager: softdelete.NewManager[T, PT](db, relations, opts...),
	}
}

func (s softDeleteStore[T, PT]) active(ctx context.Context, specs []specification.Specification) *softdelete.QuerySet[T] {
	return s.manager.Objects(ctx).Scopes(specification.Scopes(specs...)...)
}

func (s softDeleteStore[T, PT]) deleted(ctx context.Context, specs []specification.Specification) *softdelete.QuerySet[T] {
	return s.manager.DeletedOnly(ctx).Scopes(specification.Scopes(specs...)...)
}

// trash is the deleted view ordered for listing.
func (s softDeleteStore[T, PT]) trash(ctx context.Context, specs []specification.Specification) *softdelete.QuerySet[T] {
	return s.deleted(ctx, specs).Scopes(scope.OrderByDeletedDesc)
}

// listing is the active view ordered for listing.
func (s softDeleteStore[T, PT]) listing(ctx context.Context, specs []specification.Specification) *softdelete.QuerySet[T] {
	return s.active(ctx, specs).Scopes(scope.OrderByCreatedDesc)
}

func (s softDeleteStore[T, PT]) all(ctx context.Context, specs []specification.Specification) *softdelete.QuerySet[T] {
	return s.manager.All(ctx).Scopes(specification.Scopes(specs...)...)
}

func (s softDeleteStore[T, PT]) create(ctx context.Context, m PT) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// save never writes the soft delete columns; those change only through
// the manager.
func (s softDeleteStore[T, PT]) save(ctx context.Context, m PT) error {
	return s.db.WithContext(ctx).
		Omit(softdelete.ColumnIsDeleted, softdelete.ColumnDeletedAt, clause.Associations).
		Save(m).Error
}

// findOne returns nil, nil when nothing matches.
func (s softDeleteStore[T, PT]) findOne(qs *softdelete.QuerySet[T]) (*T, error) {
	rows, err := qs.Limit(1).Find()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// delete reports false when the record was already deleted.
func (s softDeleteStore[T, PT]) delete(ctx context.Context, specs []specification.Specification) (bool, error) {
	m, err := s.all(ctx, specs).First()
	if err != nil {
		return false, err
	}
	if PT(m).State() == softdelete.StateDeleted {
		return false, nil
	}
	if err := s.manager.Delete(ctx, PT(m)); err != nil {
		return false, err
	}
	return true, nil
}

// restore reports false when the record was already active.
func (s softDeleteStore[T, PT]) restore(ctx context.Context, specs []specification.Specification) (bool, error) {
	m, err := s.all(ctx, specs).First()
	if err != nil {
		return false, err
	}
	if PT(m).State() == softdelete.StateActive {
		return false, nil
	}
	if err := s.manager.Restore(ctx, PT(m)); err != nil {
		return false, err
	}
	return true, nil
}

func (s softDeleteStore[T, PT]) hardDelete(ctx context.Context, specs []specification.Specification) error {
	m, err := s.all(ctx, specs).First()
	if err != nil {
		return err
	}
	return s.manager.HardDelete(ctx, PT(m))
}
