package model

import (
	"time"

	"todo-api/internal/domain/entity"
)

type TodoEventType string

const (
	TodoCreated TodoEventType = "todo.created"
	TodoUpdated TodoEventType = "todo.updated"
	TodoDeleted TodoEventType = "todo.deleted"
	TodoCleared TodoEventType = "todo.cleared"
)

// TodoEvent is published after every successful store mutation.
type TodoEvent struct {
	ID           string        `json:"id"`
	Type         TodoEventType `json:"type"`
	Todo         *entity.Todo  `json:"todo,omitempty"`
	DeletedCount int64         `json:"deletedCount,omitempty"`
	OccurredAt   time.Time     `json:"occurredAt"`
}
