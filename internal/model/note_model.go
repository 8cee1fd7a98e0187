package model

import (
	"time"

	"notes-softdelete/pkg/softdelete"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Content    string    `gorm:"type:text"`
	NotebookId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
	softdelete.Model

	Embeddings []NoteEmbedding `gorm:"foreignKey:NoteId;constraint:OnDelete:CASCADE"`
}

func (Note) TableName() string {
	return "notes"
}
