package contract

import (
	"context"

	"notes-softdelete/internal/model"
	"notes-softdelete/internal/repository/specification"
)

type NoteEmbeddingRepository interface {
	Create(ctx context.Context, embedding *model.NoteEmbedding) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountDeleted(ctx context.Context, specs ...specification.Specification) (int64, error)
}
