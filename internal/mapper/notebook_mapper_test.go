package mapper

import (
	"testing"
	"time"

	"notes-softdelete/internal/entity"
	"notes-softdelete/internal/model"
	"notes-softdelete/pkg/softdelete"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotebookMapperCarriesSoftDeleteState(t *testing.T) {
	deletedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := &model.Notebook{
		Id:        uuid.New(),
		Name:      "Recipes",
		UserId:    uuid.New(),
		CreatedAt: deletedAt.Add(-time.Hour),
		Model:     softdelete.Model{IsDeleted: true, DeletedAt: &deletedAt},
	}

	e := NewNotebookMapper().ToEntity(m)
	require.NotNil(t, e)
	assert.True(t, e.IsDeleted)
	assert.Equal(t, &deletedAt, e.DeletedAt)
	assert.Nil(t, e.UpdatedAt)

	back := NewNotebookMapper().ToModel(e)
	assert.Equal(t, m.Model, back.Model)
	assert.True(t, back.UpdatedAt.IsZero())
}

func TestToSoftDeleteModelKeepsInvariant(t *testing.T) {
	stamp := time.Now().UTC()

	tests := []struct {
		name      string
		isDeleted bool
		deletedAt *time.Time
		wantNil   bool
	}{
		{"active", false, nil, true},
		{"active with stale stamp", false, &stamp, true},
		{"deleted", true, &stamp, false},
		{"deleted without stamp", true, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toSoftDeleteModel(tt.isDeleted, tt.deletedAt)
			assert.Equal(t, tt.isDeleted, got.IsDeleted)
			assert.Equal(t, tt.wantNil, got.DeletedAt == nil)
		})
	}
}

func TestNoteMapperEntities(t *testing.T) {
	notes := []*model.Note{
		{Id: uuid.New(), Title: "a"},
		{Id: uuid.New(), Title: "b"},
	}

	entities := NewNoteMapper().ToEntities(notes)
	require.Len(t, entities, 2)
	assert.Equal(t, "b", entities[1].Title)
	assert.False(t, entities[0].IsDeleted)

	assert.Nil(t, NewNoteMapper().ToEntity(nil))
	assert.Nil(t, NewNoteMapper().ToModel((*entity.Note)(nil)))
}
