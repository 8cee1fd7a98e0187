package implementation

import (
	"context"

	"notes-softdelete/internal/model"
	"notes-softdelete/internal/repository/contract"
	"notes-softdelete/internal/repository/specification"
	"notes-softdelete/pkg/softdelete"

	"gorm.io/gorm"
)

type NoteEmbeddingRepositoryImpl struct {
	store softDeleteStore[model.NoteEmbedding, *model.NoteEmbedding]
}

func NewNoteEmbeddingRepository(db *gorm.DB, relations *softdelete.Registry, opts ...softdelete.Option) contract.NoteEmbeddingRepository {
	return &NoteEmbeddingRepositoryImpl{
		store: newSoftDeleteStore[model.NoteEmbedding](db, relations, opts...),
	}
}

func (r *NoteEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *model.NoteEmbedding) error {
	return r.store.create(ctx, embedding)
}

func (r *NoteEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.store.active(ctx, specs).Count()
}

func (r *NoteEmbeddingRepositoryImpl) CountDeleted(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.store.deleted(ctx, specs).Count()
}
