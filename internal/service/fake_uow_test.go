package service

import (
	"context"
	"time"

	"notes-softdelete/internal/entity"
	"notes-softdelete/internal/repository/contract"
	"notes-softdelete/internal/repository/specification"
	"notes-softdelete/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeStore keeps rows in memory and understands the specifications the
// services build. Soft delete cascades one level from notebooks to notes.
type fakeStore struct {
	notebooks map[uuid.UUID]*entity.Notebook
	notes     map[uuid.UUID]*entity.Note
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		notebooks: make(map[uuid.UUID]*entity.Notebook),
		notes:     make(map[uuid.UUID]*entity.Note),
	}
}

func (s *fakeStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: s}
}

var _ unitofwork.RepositoryFactory = (*fakeStore)(nil)

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) NotebookRepository() contract.NotebookRepository {
	return &fakeNotebookRepository{store: u.store}
}

func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepository{store: u.store}
}

func (u *fakeUnitOfWork) NoteEmbeddingRepository() contract.NoteEmbeddingRepository {
	return nil
}

type filter struct {
	id          *uuid.UUID
	userId      *uuid.UUID
	notebookId  *uuid.UUID
	notebookIds []uuid.UUID
	parentId    *uuid.UUID
}

func toFilter(specs []specification.Specification) filter {
	var f filter
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			f.id = &s.ID
		case specification.UserOwnedBy:
			f.userId = &s.UserID
		case specification.ByNotebookID:
			f.notebookId = &s.NotebookID
		case specification.ByNotebookIDs:
			f.notebookIds = s.NotebookIDs
		case specification.ByParentID:
			f.parentId = s.ParentID
		}
	}
	return f
}

func (f filter) match(id, userId uuid.UUID, notebookId, parentId *uuid.UUID) bool {
	if f.id != nil && *f.id != id {
		return false
	}
	if f.parentId != nil && (parentId == nil || *f.parentId != *parentId) {
		return false
	}
	if f.userId != nil && *f.userId != userId {
		return false
	}
	if f.notebookId != nil && (notebookId == nil || *f.notebookId != *notebookId) {
		return false
	}
	if f.notebookIds != nil {
		if notebookId == nil {
			return false
		}
		for _, nid := range f.notebookIds {
			if nid == *notebookId {
				return true
			}
		}
		return false
	}
	return true
}

type fakeNotebookRepository struct {
	store *fakeStore
}

func (r *fakeNotebookRepository) find(specs []specification.Specification, deleted *bool) []*entity.Notebook {
	f := toFilter(specs)
	result := make([]*entity.Notebook, 0)
	for _, n := range r.store.notebooks {
		if deleted != nil && n.IsDeleted != *deleted {
			continue
		}
		if f.match(n.Id, n.UserId, nil, n.ParentId) {
			cp := *n
			result = append(result, &cp)
		}
	}
	return result
}

func (r *fakeNotebookRepository) Create(ctx context.Context, notebook *entity.Notebook) error {
	cp := *notebook
	r.store.notebooks[notebook.Id] = &cp
	return nil
}

func (r *fakeNotebookRepository) Update(ctx context.Context, notebook *entity.Notebook) error {
	return r.Create(ctx, notebook)
}

func (r *fakeNotebookRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Notebook, error) {
	rows := r.find(specs, boolPtr(false))
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *fakeNotebookRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error) {
	return r.find(specs, boolPtr(false)), nil
}

func (r *fakeNotebookRepository) FindDeleted(ctx context.Context, specs ...specification.Specification) ([]*entity.Notebook, error) {
	return r.find(specs, boolPtr(true)), nil
}

func (r *fakeNotebookRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.find(specs, boolPtr(false)))), nil
}

func (r *fakeNotebookRepository) Delete(ctx context.Context, specs ...specification.Specification) (bool, error) {
	rows := r.find(specs, nil)
	if len(rows) == 0 {
		return false, gorm.ErrRecordNotFound
	}
	n := r.store.notebooks[rows[0].Id]
	if n.IsDeleted {
		return false, nil
	}
	now := time.Now()
	n.IsDeleted, n.DeletedAt = true, &now
	for _, note := range r.store.notes {
		if note.NotebookId == n.Id {
			note.IsDeleted, note.DeletedAt = true, &now
		}
	}
	return true, nil
}

func (r *fakeNotebookRepository) Restore(ctx context.Context, specs ...specification.Specification) (bool, error) {
	rows := r.find(specs, nil)
	if len(rows) == 0 {
		return false, gorm.ErrRecordNotFound
	}
	n := r.store.notebooks[rows[0].Id]
	if !n.IsDeleted {
		return false, nil
	}
	n.IsDeleted, n.DeletedAt = false, nil
	for _, note := range r.store.notes {
		if note.NotebookId == n.Id {
			note.IsDeleted, note.DeletedAt = false, nil
		}
	}
	return true, nil
}

func (r *fakeNotebookRepository) HardDelete(ctx context.Context, specs ...specification.Specification) error {
	rows := r.find(specs, nil)
	if len(rows) == 0 {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.notebooks, rows[0].Id)
	for id, note := range r.store.notes {
		if note.NotebookId == rows[0].Id {
			delete(r.store.notes, id)
		}
	}
	return nil
}

type fakeNoteRepository struct {
	store *fakeStore
}

func (r *fakeNoteRepository) find(specs []specification.Specification, deleted *bool) []*entity.Note {
	f := toFilter(specs)
	result := make([]*entity.Note, 0)
	for _, n := range r.store.notes {
		if deleted != nil && n.IsDeleted != *deleted {
			continue
		}
		if f.match(n.Id, n.UserId, &n.NotebookId, nil) {
			cp := *n
			result = append(result, &cp)
		}
	}
	return result
}

func (r *fakeNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	cp := *note
	r.store.notes[note.Id] = &cp
	return nil
}

func (r *fakeNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	return r.Create(ctx, note)
}

func (r *fakeNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	rows := r.find(specs, boolPtr(false))
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *fakeNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	return r.find(specs, boolPtr(false)), nil
}

func (r *fakeNoteRepository) FindDeleted(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	return r.find(specs, boolPtr(true)), nil
}

func (r *fakeNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.find(specs, boolPtr(false)))), nil
}

func (r *fakeNoteRepository) Delete(ctx context.Context, specs ...specification.Specification) (bool, error) {
	rows := r.find(specs, nil)
	if len(rows) == 0 {
		return false, gorm.ErrRecordNotFound
	}
	n := r.store.notes[rows[0].Id]
	if n.IsDeleted {
		return false, nil
	}
	now := time.Now()
	n.IsDeleted, n.DeletedAt = true, &now
	return true, nil
}

func (r *fakeNoteRepository) Restore(ctx context.Context, specs ...specification.Specification) (bool, error) {
	rows := r.find(specs, nil)
	if len(rows) == 0 {
		return false, gorm.ErrRecordNotFound
	}
	n := r.store.notes[rows[0].Id]
	if !n.IsDeleted {
		return false, nil
	}
	n.IsDeleted, n.DeletedAt = false, nil
	return true, nil
}

func (r *fakeNoteRepository) HardDelete(ctx context.Context, specs ...specification.Specification) error {
	rows := r.find(specs, nil)
	if len(rows) == 0 {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.notes, rows[0].Id)
	return nil
}

func boolPtr(b bool) *bool { return &b }

