package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTEBOOK_TRASHED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	TypeTrashed  = "TRASHED"
	TypeRestored = "RESTORED"
	TypePurged   = "PURGED"
)

// TrashEvent records a soft delete, restore or hard delete of one resource.
type TrashEvent struct {
	Type       string    `json:"type"`
	Resource   string    `json:"resource"`
	ResourceId uuid.UUID `json:"resource_id"`
	UserId     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewTrashEvent(eventType, resource string, resourceId, userId uuid.UUID) TrashEvent {
	return TrashEvent{
		Type:       eventType,
		Resource:   resource,
		ResourceId: resourceId,
		UserId:     userId,
		OccurredAt: time.Now().UTC(),
	}
}

func (e TrashEvent) EventType() string {
	return e.Resource + "_" + e.Type
}

func (e TrashEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"resource":    e.Resource,
		"resource_id": e.ResourceId.String(),
		"user_id":     e.UserId.String(),
	}
}

func (e TrashEvent) Timestamp() time.Time {
	return e.OccurredAt
}
