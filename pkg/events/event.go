package events

import (
	"encoding/json"
	"time"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "NOTE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	NoteCreated      = "NOTE_CREATED"
	NoteUpdated      = "NOTE_UPDATED"
	NoteDeleted      = "NOTE_DELETED"
	TodoCreated      = "TODO_CREATED"
	TodoToggled      = "TODO_TOGGLED"
	TodoDeleted      = "TODO_DELETED"
	StarredCreated   = "STARRED_CREATED"
	StarredDeleted   = "STARRED_DELETED"
	IndexItemCreated = "INDEX_ITEM_CREATED"
	IndexItemDeleted = "INDEX_ITEM_DELETED"
)

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// UserId returns the owner carried in the payload, or "" when absent.
func (e BaseEvent) UserId() string {
	v, _ := e.Data["user_id"].(string)
	return v
}

// EntityChanged builds the event every mutation of an owned record emits.
func EntityChanged(eventType, userId, entityId string) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"user_id":   userId,
			"entity_id": entityId,
		},
		OccurredAt: time.Now().UTC(),
	}
}

func Encode(e Event) ([]byte, error) {
	return json.Marshal(BaseEvent{
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	})
}

func Decode(data []byte) (BaseEvent, error) {
	var e BaseEvent
	err := json.Unmarshal(data, &e)
	return e, err
}
