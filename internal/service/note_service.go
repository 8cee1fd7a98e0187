package service

import (
	"context"
	"fmt"
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

type INoteService interface {
	GetAll(ctx context.Context, userId uuid.UUID, notebookId *uuid.UUID) ([]*dto.GetAllNoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Purge(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Trash(ctx context.Context, userId uuid.UUID) ([]*dto.TrashNoteResponse, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, logger logger.ILogger) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *noteService) GetAll(ctx context.Context, userId uuid.UUID, notebookId *uuid.UUID) ([]*dto.GetAllNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{specification.UserOwnedBy{UserID: userId}}
	if notebookId != nil {
		specs = append(specs, specification.ByNotebookID{NotebookID: *notebookId})
	}

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GetAllNoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, &dto.GetAllNoteResponse{
			Id:         note.Id,
			Title:      note.Title,
			NotebookId: note.NotebookId,
			CreatedAt:  note.CreatedAt,
			UpdatedAt:  note.UpdatedAt,
		})
	}

	return result, nil
}

func (c *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	// Notes can only be added to an active notebook.
	notebook, err := uow.NotebookRepository().FindOne(ctx,
		specification.ByID{ID: req.NotebookId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, serverutils.ErrNotFound
	}

	note := entity.Note{
		Id:         uuid.New(),
		Title:      req.Title,
		Content:    req.Content,
		NotebookId: req.NotebookId,
		UserId:     userId,
		CreatedAt:  time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	return &dto.CreateNoteResponse{
		Id: note.Id,
	}, nil
}

func (c *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.ErrNotFound
	}

	return &dto.ShowNoteResponse{
		Id:         note.Id,
		Title:      note.Title,
		Content:    note.Content,
		NotebookId: note.NotebookId,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}, nil
}

// Delete moves the note and its embeddings to the trash.
func (c *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	changed, err := uow.NoteRepository().Delete(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		c.logger.Error("NOTE", "Failed to move note to trash", map[string]interface{}{"note_id": id, "error": err.Error()})
		return err
	}

	if !changed {
		return nil
	}

	c.logger.Info("NOTE", "Note moved to trash", map[string]interface{}{"note_id": id, "user_id": userId})
	c.publish(ctx, events.TypeTrashed, id, userId)
	return nil
}

// Restore refuses to bring a note back into a notebook that is still in
// the trash; restoring the notebook restores its notes.
func (c *noteService) Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindDeleted(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}

	if len(notes) > 0 {
		notebook, err := uow.NotebookRepository().FindOne(ctx,
			specification.ByID{ID: notes[0].NotebookId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return err
		}
		if notebook == nil {
			return fmt.Errorf("%w: notebook %s is in trash", serverutils.ErrConflict, notes[0].NotebookId)
		}
	}

	changed, err := uow.NoteRepository().Restore(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		c.logger.Error("NOTE", "Failed to restore note", map[string]interface{}{"note_id": id, "error": err.Error()})
		return err
	}

	if !changed {
		return nil
	}

	c.logger.Info("NOTE", "Note restored", map[string]interface{}{"note_id": id, "user_id": userId})
	c.publish(ctx, events.TypeRestored, id, userId)
	return nil
}

func (c *noteService) Purge(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	err := uow.NoteRepository().HardDelete(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		c.logger.Error("NOTE", "Failed to purge note", map[string]interface{}{"note_id": id, "error": err.Error()})
		return err
	}

	c.logger.Info("NOTE", "Note purged", map[string]interface{}{"note_id": id, "user_id": userId})
	c.publish(ctx, events.TypePurged, id, userId)
	return nil
}

func (c *noteService) Trash(ctx context.Context, userId uuid.UUID) ([]*dto.TrashNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindDeleted(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TrashNoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, &dto.TrashNoteResponse{
			Id:         note.Id,
			Title:      note.Title,
			NotebookId: note.NotebookId,
			DeletedAt:  note.DeletedAt,
		})
	}

	return result, nil
}

// publish runs after the write is done, so a failure is only logged.
func (c *noteService) publish(ctx context.Context, eventType string, id, userId uuid.UUID) {
	event := events.NewTrashEvent(eventType, "NOTE", id, userId)
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("NOTE", "Failed to publish trash event", map[string]interface{}{"event": event.EventType(), "error": err.Error()})
	}
}
