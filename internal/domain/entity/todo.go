package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Todo is the single record kept by the todo store.
type Todo struct {
	ID        string    `json:"id" example:"9b2f7f4e-3c1a-4c43-9a55-2b0f3f0e5c11"`
	Title     string    `json:"title" example:"buy milk"`
	Completed bool      `json:"completed" example:"false"`
	CreatedAt time.Time `json:"createdAt" example:"2025-01-01T10:00:00.000Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-01-01T10:00:00.000Z"`
}

// TimestampLayout renders timestamps as ISO-8601 UTC with exactly three fractional digits.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NewTodo builds a pending todo with a fresh id. Both timestamps are set to now.
func NewTodo(title string, now time.Time) Todo {
	stamp := Timestamp(now)
	return Todo{
		ID:        uuid.New().String(),
		Title:     title,
		Completed: false,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
}

// Apply merges the supplied fields into the todo and advances UpdatedAt.
// Nil arguments leave the corresponding field untouched. UpdatedAt never moves backwards.
func (t *Todo) Apply(title *string, completed *bool, now time.Time) {
	if title != nil {
		t.Title = *title
	}
	if completed != nil {
		t.Completed = *completed
	}

	stamp := Timestamp(now)
	if stamp.Before(t.UpdatedAt) {
		stamp = t.UpdatedAt
	}
	t.UpdatedAt = stamp
}

// Timestamp normalizes t to UTC with millisecond precision, the resolution exposed by the API.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// MarshalJSON keeps a fixed millisecond layout; the default encoder trims trailing zeros.
func (t Todo) MarshalJSON() ([]byte, error) {
	type todoJSON struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
		CreatedAt string `json:"createdAt"`
		UpdatedAt string `json:"updatedAt"`
	}
	return json.Marshal(todoJSON{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		CreatedAt: Timestamp(t.CreatedAt).Format(TimestampLayout),
		UpdatedAt: Timestamp(t.UpdatedAt).Format(TimestampLayout),
	})
}
