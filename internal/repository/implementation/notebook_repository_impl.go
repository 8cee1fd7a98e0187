package implementation

import (
	"context"

	"notes-softdelete/internal/entity"
	"notes-softdelete/internal/mapper"
	"notes-softdelete/internal/model"
	"notes-softdelete/internal/repository/contract"
	"notes-softdelete/internal/repository/specification"
	"notes-softdelete/pkg/softdelete"

	"gorm.io/gorm"
)

type NotebookRepositoryImpl struct {
	store  softDeleteStore[model.Notebook, *model.Notebook]
	mapper *mapper.NotebookMapper
}

func NewNotebookRepository(db *gorm.DB, relations *softdelete.Registry, opts ...softdelete.Option) contract.NotebookRepository {
	return &NotebookRepositoryImpl{
		store:  newSoftDeleteStore[model.Notebook](db, relations, opts...),
		mapper: mapper.NewNotebookMapper(),
	}
}

func (r *NotebookRepositoryImpl) Create(ctx context.Context, notebook *entity.Notebook) error {
	m := r.mapper.ToModel(notebook)
	if err := r.store.create(ctx, m); err != nil {
		return err
	}
	*notebook = *r.mapper.ToEntity(m)
	return nil
}

func (r *NotebookRepositoryImpl) Update(ctx context.Context, notebook *entity.Notebook) error {
	m := r.mapper.ToModel(notebook)
	if err := r.store.save(ctx, m); err != nil {
		return err
	}
	*notebook = *r.mapper.ToEntity(m)
	return nil
}

func (r *NotebookRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error) {
	m, err := r.store.findOne(r.store.active(ctx, specs))
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *NotebookRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error) {
	models, err := r.store.listing(ctx, specs).Find()
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NotebookRepositoryImpl) FindDeleted(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error) {
	models, err := r.store.trash(ctx, specs).Find()
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NotebookRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.store.active(ctx, specs).Count()
}

func (r *NotebookRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) (bool, error) {
	return r.store.delete(ctx, specs)
}

func (r *NotebookRepositoryImpl) Restore(ctx context.Context, specs ...specification.Specification) (bool, error) {
	return r.store.restore(ctx, specs)
}

func (r *NotebookRepositoryImpl) HardDelete(ctx context.Context, specs ...specification.Specification) error {
	return r.store.hardDelete(ctx, specs)
}
