// Package softdelete adds a flag-based soft delete on top of GORM models.
//
// A model opts in by embedding Model. Deleting such a record flips
// is_deleted and stamps deleted_at instead of removing the row, and the
// change is propagated one level down every relation registered with the
// Cascade policy. Reads go through a Manager whose default entry point
// hides deleted rows.
package softdelete

import "time"

const (
	ColumnIsDeleted = "is_deleted"
	ColumnDeletedAt = "deleted_at"
)

type State int

const (
	StateActive State = iota
	StateDeleted
)

func (s State) String() string {
	if s == StateDeleted {
		return "deleted"
	}
	return "active"
}

// Model holds the soft delete columns. Embed it in a GORM model; do not
// combine it with gorm.DeletedAt.
type Model struct {
	IsDeleted bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// Deletable is satisfied by any type embedding Model.
type Deletable interface {
	State() State
	softDeleteModel() *Model
}

func (m *Model) softDeleteModel() *Model {
	return m
}

func (m *Model) State() State {
	if m.IsDeleted {
		return StateDeleted
	}
	return StateActive
}

func (m *Model) markDeleted(now time.Time) {
	m.IsDeleted = true
	m.DeletedAt = &now
}

func (m *Model) markActive() {
	m.IsDeleted = false
	m.DeletedAt = nil
}

// IsSoftDeletable reports whether values of type T carry the soft delete
// columns.
func IsSoftDeletable[T any]() bool {
	_, ok := any(new(T)).(Deletable)
	return ok
}
