package unitofwork

import (
	"context"

	"notes-softdelete/pkg/softdelete"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db        *gorm.DB
	relations *softdelete.Registry
	opts      []softdelete.Option
}

// NewRepositoryFactory shares one relation registry and one set of soft
// delete options across every unit of work.
func NewRepositoryFactory(db *gorm.DB, relations *softdelete.Registry, opts ...softdelete.Option) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db:        db,
		relations: relations,
		opts:      opts,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// UoW is short lived, one per request. The context is passed again to
	// Begin() and to every repository call.
	return NewUnitOfWork(f.db, f.relations, f.opts...)
}
