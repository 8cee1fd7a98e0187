package contract

import (
	"context"

	"notes-softdelete/internal/entity"
	"notes-softdelete/internal/repository/specification"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	FindDeleted(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, specs ...specification.Specification) (bool, error)
	Restore(ctx context.Context, specs ...specification.Specification) (bool, error)
	HardDelete(ctx context.Context, specs ...specification.Specification) error
}
