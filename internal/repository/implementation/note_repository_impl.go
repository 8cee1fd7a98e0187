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

type NoteRepositoryImpl struct {
	store  softDeleteStore[model.Note, *model.Note]
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB, relations *softdelete.Registry, opts ...softdelete.Option) contract.NoteRepository {
	return &NoteRepositoryImpl{
		store:  newSoftDeleteStore[model.Note](db, relations, opts...),
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.store.create(ctx, m); err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.store.save(ctx, m); err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	m, err := r.store.findOne(r.store.active(ctx, specs))
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	models, err := r.store.listing(ctx, specs).Find()
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) FindDeleted(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	models, err := r.store.trash(ctx, specs).Find()
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.store.active(ctx, specs).Count()
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, specs ...specification.Specification) (bool, error) {
	return r.store.delete(ctx, specs)
}

func (r *NoteRepositoryImpl) Restore(ctx context.Context, specs ...specification.Specification) (bool, error) {
	return r.store.restore(ctx, specs)
}

func (r *NoteRepositoryImpl) HardDelete(ctx context.Context, specs ...specification.Specification) error {
	return r.store.hardDelete(ctx, specs)
}
