package entity

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewTodo(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 30, 0, 123456789, time.FixedZone("BRT", -3*60*60))

	todo := NewTodo("buy milk", now)

	if todo.ID == "" {
		t.Fatal("ID: got empty, want generated uuid")
	}
	if todo.Title != "buy milk" {
		t.Errorf("Title: got %q, want %q", todo.Title, "buy milk")
	}
	if todo.Completed {
		t.Error("Completed: got true, want false")
	}
	if !todo.CreatedAt.Equal(todo.UpdatedAt) {
		t.Errorf("CreatedAt %v != UpdatedAt %v", todo.CreatedAt, todo.UpdatedAt)
	}
	if todo.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location: got %v, want UTC", todo.CreatedAt.Location())
	}
	if todo.CreatedAt.Nanosecond() != 123000000 {
		t.Errorf("CreatedAt nanos: got %d, want 123000000", todo.CreatedAt.Nanosecond())
	}
}

func TestNewTodoUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	now := time.Now()
	for i := 0; i < 500; i++ {
		todo := NewTodo("task", now)
		if seen[todo.ID] {
			t.Fatalf("duplicate id %s after %d todos", todo.ID, i)
		}
		seen[todo.ID] = true
	}
}

func TestApply(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	later := created.Add(time.Minute)
	newTitle := "buy oat milk"
	done := true

	tests := []struct {
		name          string
		title         *string
		completed     *bool
		now           time.Time
		wantTitle     string
		wantCompleted bool
		wantUpdated   time.Time
	}{
		{name: "no fields only touches updatedAt", now: later, wantTitle: "buy milk", wantUpdated: later},
		{name: "title only", title: &newTitle, now: later, wantTitle: newTitle, wantUpdated: later},
		{name: "completed only", completed: &done, now: later, wantTitle: "buy milk", wantCompleted: true, wantUpdated: later},
		{name: "both fields", title: &newTitle, completed: &done, now: later, wantTitle: newTitle, wantCompleted: true, wantUpdated: later},
		{name: "clock behind keeps updatedAt", completed: &done, now: created.Add(-time.Hour), wantTitle: "buy milk", wantCompleted: true, wantUpdated: created},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := NewTodo("buy milk", created)
			id := todo.ID

			todo.Apply(tt.title, tt.completed, tt.now)

			if todo.ID != id {
				t.Errorf("ID changed: got %s, want %s", todo.ID, id)
			}
			if todo.Title != tt.wantTitle {
				t.Errorf("Title: got %q, want %q", todo.Title, tt.wantTitle)
			}
			if todo.Completed != tt.wantCompleted {
				t.Errorf("Completed: got %v, want %v", todo.Completed, tt.wantCompleted)
			}
			if !todo.CreatedAt.Equal(created) {
				t.Errorf("CreatedAt changed: got %v, want %v", todo.CreatedAt, created)
			}
			if !todo.UpdatedAt.Equal(tt.wantUpdated) {
				t.Errorf("UpdatedAt: got %v, want %v", todo.UpdatedAt, tt.wantUpdated)
			}
		})
	}
}

func TestTodoJSONTimestamps(t *testing.T) {
	todo := NewTodo("buy milk", time.Date(2025, 1, 1, 10, 0, 0, 100_000_000, time.UTC))

	raw, err := json.Marshal(todo)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"createdAt":"2025-01-01T10:00:00.100Z"`) {
		t.Errorf("createdAt layout: got %s", raw)
	}

	var decoded Todo
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !decoded.CreatedAt.Equal(todo.CreatedAt) || decoded.ID != todo.ID {
		t.Errorf("decoded: got %+v, want %+v", decoded, todo)
	}
}
