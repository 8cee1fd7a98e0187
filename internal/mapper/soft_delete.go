package mapper

import (
	"time"

	"notes-softdelete/pkg/softdelete"
)

func toSoftDeleteModel(isDeleted bool, deletedAt *time.Time) softdelete.Model {
	if !isDeleted {
		return softdelete.Model{}
	}
	if deletedAt == nil {
		now := time.Now().UTC()
		deletedAt = &now
	}
	t := *deletedAt
	return softdelete.Model{IsDeleted: true, DeletedAt: &t}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func valueOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
