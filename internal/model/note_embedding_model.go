package model

import (
	"time"

	"notes-softdelete/pkg/softdelete"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type NoteEmbedding struct {
	Id             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Document       string            `gorm:"type:text"`
	EmbeddingValue pgvector.Vector   `gorm:"type:vector(768)"`
	Metadata       datatypes.JSONMap `gorm:"type:jsonb"`
	NoteId         uuid.UUID         `gorm:"type:uuid;not null;index"`
	ChunkIndex     int               `gorm:"default:0"` // 0-based index for ordering
	CreatedAt      time.Time         `gorm:"autoCreateTime"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime"`
	softdelete.Model
}

func (NoteEmbedding) TableName() string {
	return "note_embeddings"
}
