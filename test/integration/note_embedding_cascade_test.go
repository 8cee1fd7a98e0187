package integration

import (
	"context"
	"testing"
	"time"

	"notes-softdelete/internal/entity"
	"notes-softdelete/internal/model"
	"notes-softdelete/internal/repository/specification"
	"notes-softdelete/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestNoteDeleteCascadesToEmbeddings(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	uow := unitofwork.NewRepositoryFactory(db, model.Relations()).NewUnitOfWork(ctx)

	userId := uuid.New()
	notebook := &entity.Notebook{Id: uuid.New(), Name: "Vectors", UserId: userId, CreatedAt: time.Now()}
	require.NoError(t, uow.NotebookRepository().Create(ctx, notebook))

	note := &entity.Note{Id: uuid.New(), Title: "Chunked", NotebookId: notebook.Id, UserId: userId, CreatedAt: time.Now()}
	require.NoError(t, uow.NoteRepository().Create(ctx, note))

	for i := 0; i < 2; i++ {
		require.NoError(t, uow.NoteEmbeddingRepository().Create(ctx, &model.NoteEmbedding{
			Id:             uuid.New(),
			Document:       "chunk",
			EmbeddingValue: pgvector.NewVector(make([]float32, 768)),
			Metadata:       datatypes.JSONMap{"chunk": i},
			NoteId:         note.Id,
			ChunkIndex:     i,
		}))
	}

	byNote := specification.ByNoteID{NoteID: note.Id}

	changed, err := uow.NoteRepository().Delete(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	assert.True(t, changed)

	active, err := uow.NoteEmbeddingRepository().Count(ctx, byNote)
	require.NoError(t, err)
	assert.Equal(t, int64(0), active)

	deleted, err := uow.NoteEmbeddingRepository().CountDeleted(ctx, byNote)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	changed, err = uow.NoteRepository().Restore(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	assert.True(t, changed)

	active, err = uow.NoteEmbeddingRepository().Count(ctx, byNote)
	require.NoError(t, err)
	assert.Equal(t, int64(2), active)

	require.NoError(t, uow.NotebookRepository().HardDelete(ctx, specification.ByID{ID: notebook.Id}))
}

func TestUnitOfWorkRollbackUndoesSoftDelete(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db, model.Relations())

	userId := uuid.New()
	notebook := &entity.Notebook{Id: uuid.New(), Name: "Rollback", UserId: userId, CreatedAt: time.Now()}
	require.NoError(t, factory.NewUnitOfWork(ctx).NotebookRepository().Create(ctx, notebook))

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	_, err := uow.NotebookRepository().Delete(ctx, specification.ByID{ID: notebook.Id})
	require.NoError(t, err)
	require.NoError(t, uow.Rollback())

	found, err := factory.NewUnitOfWork(ctx).NotebookRepository().FindOne(ctx, specification.ByID{ID: notebook.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.IsDeleted)

	require.NoError(t, factory.NewUnitOfWork(ctx).NotebookRepository().HardDelete(ctx, specification.ByID{ID: notebook.Id}))
}
