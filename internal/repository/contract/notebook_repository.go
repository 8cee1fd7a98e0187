package contract

import (
	"context"

	"notes-softdelete/internal/entity"
	"notes-softdelete/internal/repository/specification"
)

// NotebookRepository reads hide soft deleted notebooks unless the method
// name says otherwise. Delete, Restore and HardDelete return
// gorm.ErrRecordNotFound when no notebook matches; Delete and Restore
// report false when the notebook was already in the requested state.
type NotebookRepository interface {
	Create(ctx context.Context, notebook *entity.Notebook) error
	Update(ctx context.Context, notebook *entity.Notebook) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error)
	FindDeleted(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, specs ...specification.Specification) (bool, error)
	Restore(ctx context.Context, specs ...specification.Specification) (bool, error)
	HardDelete(ctx context.Context, specs ...specification.Specification) error
}
