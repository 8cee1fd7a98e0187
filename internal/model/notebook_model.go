package model

import (
	"time"

	"notes-softdelete/pkg/softdelete"

	"github.com/google/uuid"
)

type Notebook struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(255);not null"`
	ParentId  *uuid.UUID `gorm:"type:uuid;index"`
	UserId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	softdelete.Model

	Notes    []Note     `gorm:"foreignKey:NotebookId;constraint:OnDelete:CASCADE"`
	Children []Notebook `gorm:"foreignKey:ParentId;constraint:OnDelete:SET NULL"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
