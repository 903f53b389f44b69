package db

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoGateway is the todo store. Lookups of an absent id return (nil, nil).
type TodoGateway interface {
	FindAll(ctx context.Context) ([]entity.Todo, error)
	FindByID(ctx context.Context, id string) (*entity.Todo, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, title string) (*entity.Todo, error)
	UpdateByID(ctx context.Context, id string, dto model.UpdateTodoDTO) (*entity.Todo, error)

	DeleteByID(ctx context.Context, id string) (*entity.Todo, error)
	DeleteAll(ctx context.Context) (int64, error)
}
