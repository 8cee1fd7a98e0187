package service

import (
	"context"
	"time"

	"notes-softdelete/internal/dto"
	"notes-softdelete/internal/entity"
	"notes-softdelete/internal/pkg/logger"
	"notes-softdelete/internal/pkg/serverutils"
	"notes-softdelete/internal/repository/specification"
	"notes-softdelete/internal/repository/unitofwork"
	"notes-softdelete/pkg/events"

	"github.com/google/uuid"
)

type INotebookService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllNotebookResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNotebookResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Purge(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Trash(ctx context.Context, userId uuid.UUID) ([]*dto.TrashNotebookResponse, error)
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewNotebookService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, logger logger.ILogger) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *notebookService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllNotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(notebooks))
	result := make([]*dto.GetAllNotebookResponse, 0, len(notebooks))
	byId := make(map[uuid.UUID]*dto.GetAllNotebookResponse, len(notebooks))
	for _, notebook := range notebooks {
		res := &dto.GetAllNotebookResponse{
			Id:        notebook.Id,
			Name:      notebook.Name,
			ParentId:  notebook.ParentId,
			CreatedAt: notebook.CreatedAt,
			UpdatedAt: notebook.UpdatedAt,
			Notes:     make([]*dto.GetAllNotebookResponseNote, 0),
		}
		result = append(result, res)
		byId[notebook.Id] = res
		ids = append(ids, notebook.Id)
	}

	if len(ids) == 0 {
		return result, nil
	}

	// Soft deleted notes are hidden even when their notebook is active.
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByNotebookIDs{NotebookIDs: ids},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	for _, note := range notes {
		notebook, ok := byId[note.NotebookId]
		if !ok {
			continue
		}
		notebook.Notes = append(notebook.Notes, &dto.GetAllNotebookResponseNote{
			Id:        note.Id,
			Title:     note.Title,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		})
	}

	return result, nil
}

func (c *notebookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if req.ParentId != nil {
		parent, err := uow.NotebookRepository().FindOne(ctx,
			specification.ByID{ID: *req.ParentId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, serverutils.ErrNotFound
		}
	}

	notebook := entity.Notebook{
		Id:        uuid.New(),
		Name:      req.Name,
		ParentId:  req.ParentId,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.NotebookRepository().Create(ctx, &notebook); err != nil {
		return nil, err
	}

	return &dto.CreateNotebookResponse{
		Id: notebook.Id,
	}, nil
}

func (c *notebookService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, serverutils.ErrNotFound
	}

	noteCount, err := uow.NoteRepository().Count(ctx, specification.ByNotebookID{NotebookID: id})
	if err != nil {
		return nil, err
	}

	childCount, err := uow.NotebookRepository().Count(ctx, specification.ByParentID{ParentID: &id})
	if err != nil {
		return nil, err
	}

	return &dto.ShowNotebookResponse{
		Id:         notebook.Id,
		Name:       notebook.Name,
		ParentId:   notebook.ParentId,
		NoteCount:  noteCount,
		ChildCount: childCount,
		CreatedAt:  notebook.CreatedAt,
		UpdatedAt:  notebook.UpdatedAt,
	}, nil
}

// Delete moves the notebook and its notes to the trash. Child notebooks
// keep their parent_id so a restore brings the tree back as it was.
func (c *notebookService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	changed, err := uow.NotebookRepository().Delete(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		c.logger.Error("NOTEBOOK", "Failed to move notebook to trash", map[string]interface{}{"notebook_id": id, "error": err.Error()})
		return err
	}

	if !changed {
		return nil
	}

	c.logger.Info("NOTEBOOK", "Notebook moved to trash", map[string]interface{}{"notebook_id": id, "user_id": userId})
	c.publish(ctx, events.TypeTrashed, id, userId)
	return nil
}

func (c *notebookService) Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	changed, err := uow.NotebookRepository().Restore(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		c.logger.Error("NOTEBOOK", "Failed to restore notebook", map[string]interface{}{"notebook_id": id, "error": err.Error()})
		return err
	}

	if !changed {
		return nil
	}

	c.logger.Info("NOTEBOOK", "Notebook restored", map[string]interface{}{"notebook_id": id, "user_id": userId})
	c.publish(ctx, events.TypeRestored, id, userId)
	return nil
}

// Purge removes the row for good. Notes and embeddings go with it through
// the ON DELETE CASCADE constraints.
func (c *notebookService) Purge(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	err := uow.NotebookRepository().HardDelete(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		c.logger.Error("NOTEBOOK", "Failed to purge notebook", map[string]interface{}{"notebook_id": id, "error": err.Error()})
		return err
	}

	c.logger.Info("NOTEBOOK", "Notebook purged", map[string]interface{}{"notebook_id": id, "user_id": userId})
	c.publish(ctx, events.TypePurged, id, userId)
	return nil
}

func (c *notebookService) Trash(ctx context.Context, userId uuid.UUID) ([]*dto.TrashNotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindDeleted(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TrashNotebookResponse, 0, len(notebooks))
	for _, notebook := range notebooks {
		result = append(result, &dto.TrashNotebookResponse{
			Id:        notebook.Id,
			Name:      notebook.Name,
			ParentId:  notebook.ParentId,
			DeletedAt: notebook.DeletedAt,
		})
	}

	return result, nil
}

// publish runs after the write is done, so a failure is only logged.
func (c *notebookService) publish(ctx context.Context, eventType string, id, userId uuid.UUID) {
	event := events.NewTrashEvent(eventType, "NOTEBOOK", id, userId)
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("NOTEBOOK", "Failed to publish trash event", map[string]interface{}{"event": event.EventType(), "error": err.Error()})
	}
}
