package softdelete

import (
	"context"
	"reflect"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var tracer = otel.Tracer("softdelete")

// Entity constrains PT to *T for a model T embedding Model.
type Entity[T any] interface {
	*T
	Deletable
}

// Manager is the entry point for reading and deleting records of type T.
type Manager[T any, PT Entity[T]] struct {
	db        *gorm.DB
	relations []Relation[T]
	logger    *zap.Logger
	atomic    bool
	name      string
}

type Option func(*options)

type options struct {
	logger *zap.Logger
	atomic bool
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithoutTransaction runs the entity write and the cascade as separate
// statements. A cascade failure then leaves the entity written and the
// remaining related records untouched.
func WithoutTransaction() Option {
	return func(o *options) {
		o.atomic = false
	}
}

// WithTransaction toggles the transaction around delete and restore.
func WithTransaction(enabled bool) Option {
	return func(o *options) {
		o.atomic = enabled
	}
}

// NewManager builds a manager for T on db, taking T's relations from
// registry (which may be nil).
func NewManager[T any, PT Entity[T]](db *gorm.DB, registry *Registry, opts ...Option) *Manager[T, PT] {
	o := options{logger: zap.NewNop(), atomic: true}
	for _, opt := range opts {
		opt(&o)
	}

	name := reflect.TypeOf((*T)(nil)).Elem().Name()
	return &Manager[T, PT]{
		db:        db,
		relations: RelationsOf[T](registry),
		logger:    o.logger.With(zap.String("model", name)),
		atomic:    o.atomic,
		name:      name,
	}
}

// Objects is the default accessor: soft deleted records are excluded.
func (m *Manager[T, PT]) Objects(ctx context.Context) *QuerySet[T] {
	return m.All(ctx).Active()
}

// All returns every record, deleted or not.
func (m *Manager[T, PT]) All(ctx context.Context) *QuerySet[T] {
	return newQuerySet[T](m.db.WithContext(ctx))
}

func (m *Manager[T, PT]) DeletedOnly(ctx context.Context) *QuerySet[T] {
	return m.All(ctx).Deleted()
}

// Delete soft deletes entity and cascades one level down. Deleting an
// already deleted entity does nothing.
func (m *Manager[T, PT]) Delete(ctx context.Context, entity PT) (err error) {
	state := entity.softDeleteModel()
	if state.IsDeleted {
		return nil
	}

	ctx, span := m.startSpan(ctx, "softdelete.Delete")
	defer func() { endSpan(span, err) }()

	before := *state
	err = m.run(ctx, func(tx *gorm.DB) error {
		now := tx.NowFunc()
		state.markDeleted(now)
		if err := tx.Omit(clause.Associations).Save(entity).Error; err != nil {
			return err
		}
		return m.cascadeDelete(tx, entity, now)
	})
	if err != nil {
		*state = before
		m.logger.Error("soft delete failed", zap.Error(err))
		return err
	}
	return nil
}

// Restore reverses Delete, including the one level cascade. Restoring an
// active entity issues no write.
func (m *Manager[T, PT]) Restore(ctx context.Context, entity PT) (err error) {
	state := entity.softDeleteModel()
	if !state.IsDeleted {
		return nil
	}

	ctx, span := m.startSpan(ctx, "softdelete.Restore")
	defer func() { endSpan(span, err) }()

	before := *state
	err = m.run(ctx, func(tx *gorm.DB) error {
		state.markActive()
		if err := tx.Omit(clause.Associations).Save(entity).Error; err != nil {
			return err
		}
		return m.cascadeRestore(tx, entity)
	})
	if err != nil {
		*state = before
		m.logger.Error("restore failed", zap.Error(err))
		return err
	}
	return nil
}

// HardDelete physically removes entity. Related rows are left to the
// storage layer's referential actions.
func (m *Manager[T, PT]) HardDelete(ctx context.Context, entity PT) (err error) {
	ctx, span := m.startSpan(ctx, "softdelete.HardDelete")
	defer func() { endSpan(span, err) }()

	if err = m.db.WithContext(ctx).Delete(entity).Error; err != nil {
		m.logger.Error("hard delete failed", zap.Error(err))
	}
	return err
}

func (m *Manager[T, PT]) run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	db := m.db.WithContext(ctx)
	if m.atomic {
		return db.Transaction(fn)
	}
	return fn(db)
}

func (m *Manager[T, PT]) cascadeDelete(tx *gorm.DB, parent *T, now time.Time) error {
	for _, rel := range m.relations {
		if !rel.cascades() {
			continue
		}
		n, err := softDeleteAll(rel.Related(tx, parent), now)
		if err != nil {
			m.logger.Warn("cascade soft delete failed", zap.String("relation", rel.Name), zap.Error(err))
			return err
		}
		m.logger.Debug("cascade soft delete", zap.String("relation", rel.Name), zap.Int64("rows", n))
	}
	return nil
}

func (m *Manager[T, PT]) cascadeRestore(tx *gorm.DB, parent *T) error {
	for _, rel := range m.relations {
		if !rel.cascades() {
			continue
		}
		n, err := restoreAll(rel.Related(tx, parent).Where(ColumnIsDeleted+" = ?", true))
		if err != nil {
			m.logger.Warn("cascade restore failed", zap.String("relation", rel.Name), zap.Error(err))
			return err
		}
		m.logger.Debug("cascade restore", zap.String("relation", rel.Name), zap.Int64("rows", n))
	}
	return nil
}

func (m *Manager[T, PT]) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attribute.String("softdelete.model", m.name)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
