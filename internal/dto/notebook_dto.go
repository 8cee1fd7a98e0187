package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNotebookRequest struct {
	Name     string     `json:"name" validate:"required,max=255"`
	ParentId *uuid.UUID `json:"parent_id"`
}

type CreateNotebookResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetAllNotebookResponseNote struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type GetAllNotebookResponse struct {
	Id        uuid.UUID                     `json:"id"`
	Name      string                        `json:"name"`
	ParentId  *uuid.UUID                    `json:"parent_id"`
	CreatedAt time.Time                     `json:"created_at"`
	UpdatedAt *time.Time                    `json:"updated_at"`
	Notes     []*GetAllNotebookResponseNote `json:"notes"`
}

type ShowNotebookResponse struct {
	Id         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	ParentId   *uuid.UUID `json:"parent_id"`
	NoteCount  int64      `json:"note_count"`
	ChildCount int64      `json:"child_count"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// TrashNotebookResponse is a soft deleted notebook as listed in the trash.
type TrashNotebookResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentId  *uuid.UUID `json:"parent_id"`
	DeletedAt *time.Time `json:"deleted_at"`
}
