package db

import (
	"context"
	"strconv"
	"sync"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// MemoryTodoGateway keeps todos in process memory, in insertion order.
// Every operation holds the lock for its whole duration, so operations never interleave.
type MemoryTodoGateway struct {
	mutex sync.RWMutex
	todos []entity.Todo
	now   func() time.Time
}

var _ TodoGateway = (*MemoryTodoGateway)(nil)
var _ HealthDBGateway = (*MemoryTodoGateway)(nil)

func NewMemoryTodoGateway() *MemoryTodoGateway {
	return NewMemoryTodoGatewayWithClock(time.Now)
}

func NewMemoryTodoGatewayWithClock(now func() time.Time) *MemoryTodoGateway {
	return &MemoryTodoGateway{
		todos: make([]entity.Todo, 0),
		now:   now,
	}
}

func (gateway *MemoryTodoGateway) FindAll(_ context.Context) ([]entity.Todo, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	results := make([]entity.Todo, len(gateway.todos))
	copy(results, gateway.todos)
	return results, nil
}

func (gateway *MemoryTodoGateway) FindByID(_ context.Context, id string) (*entity.Todo, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	index := gateway.indexOf(id)
	if index == -1 {
		return nil, nil
	}
	todo := gateway.todos[index]
	return &todo, nil
}

func (gateway *MemoryTodoGateway) Count(_ context.Context) (int64, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()
	return int64(len(gateway.todos)), nil
}

func (gateway *MemoryTodoGateway) Create(_ context.Context, title string) (*entity.Todo, error) {
	todo := entity.NewTodo(title, gateway.now())

	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	gateway.todos = append(gateway.todos, todo)
	return &todo, nil
}

func (gateway *MemoryTodoGateway) UpdateByID(_ context.Context, id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	index := gateway.indexOf(id)
	if index == -1 {
		return nil, nil
	}

	gateway.todos[index].Apply(dto.Title, dto.Completed, gateway.now())
	updated := gateway.todos[index]
	return &updated, nil
}

func (gateway *MemoryTodoGateway) DeleteByID(_ context.Context, id string) (*entity.Todo, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	index := gateway.indexOf(id)
	if index == -1 {
		return nil, nil
	}

	deleted := gateway.todos[index]
	gateway.todos = append(gateway.todos[:index], gateway.todos[index+1:]...)
	return &deleted, nil
}

func (gateway *MemoryTodoGateway) DeleteAll(_ context.Context) (int64, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	count := int64(len(gateway.todos))
	gateway.todos = make([]entity.Todo, 0)
	return count, nil
}

func (gateway *MemoryTodoGateway) Health(_ context.Context) model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"backend": "memory",
			"todos":   strconv.Itoa(len(gateway.todos)),
		},
	}
}

// indexOf must be called with the mutex held
func (gateway *MemoryTodoGateway) indexOf(id string) int {
	for i := range gateway.todos {
		if gateway.todos[i].ID == id {
			return i
		}
	}
	return -1
}
