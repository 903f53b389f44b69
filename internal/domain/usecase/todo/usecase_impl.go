package todo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

type todoUseCase struct {
	gateway     db.TodoGateway
	sender      queue.Sender
	destination string
}

// NewTodoUseCase builds the use case. Events go to destination through sender; a nil sender disables them.
func NewTodoUseCase(gateway db.TodoGateway, sender queue.Sender, destination string) UseCase {
	return &todoUseCase{
		gateway:     gateway,
		sender:      sender,
		destination: destination,
	}
}

func (uc *todoUseCase) FindAll(ctx context.Context) (*model.TodoListResponse, error) {
	todos, err := uc.gateway.FindAll(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	if todos == nil {
		todos = []entity.Todo{}
	}
	return &model.TodoListResponse{Todos: todos, Count: len(todos)}, nil
}

func (uc *todoUseCase) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	todo, err := uc.gateway.FindByID(ctx, id)
	if err != nil {
		return nil, internalError(err)
	}
	if todo == nil {
		return nil, notFoundError()
	}
	return todo, nil
}

func (uc *todoUseCase) Create(ctx context.Context, dto model.CreateTodoDTO) (*entity.Todo, error) {
	if dto.Title == "" {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.validation"), []model.ValidationIssue{
			{Path: "title", Message: msg.GetMessage("todo.error.title-required")},
		})
	}

	created, err := uc.gateway.Create(ctx, dto.Title)
	if err != nil {
		return nil, internalError(err)
	}

	log.Info(msg.GetMessage("todo.created", created.ID), zap.String("id", created.ID))
	uc.publish(ctx, model.TodoCreated, created, 0)
	return created, nil
}

func (uc *todoUseCase) UpdateByID(ctx context.Context, id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	if dto.Title != nil && *dto.Title == "" {
		return nil, model.NewValidationError(msg.GetMessage("todo.error.validation"), []model.ValidationIssue{
			{Path: "title", Message: msg.GetMessage("todo.error.title-required")},
		})
	}

	updated, err := uc.gateway.UpdateByID(ctx, id, dto)
	if err != nil {
		return nil, internalError(err)
	}
	if updated == nil {
		return nil, notFoundError()
	}

	log.Info(msg.GetMessage("todo.updated", updated.ID), zap.String("id", updated.ID))
	uc.publish(ctx, model.TodoUpdated, updated, 0)
	return updated, nil
}

func (uc *todoUseCase) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	deleted, err := uc.gateway.DeleteByID(ctx, id)
	if err != nil {
		return nil, internalError(err)
	}
	if deleted == nil {
		return nil, notFoundError()
	}

	log.Info(msg.GetMessage("todo.deleted", deleted.ID), zap.String("id", deleted.ID))
	uc.publish(ctx, model.TodoDeleted, deleted, 0)
	return deleted, nil
}

func (uc *todoUseCase) DeleteAll(ctx context.Context) (int64, error) {
	count, err := uc.gateway.DeleteAll(ctx)
	if err != nil {
		return 0, internalError(err)
	}

	log.Info(msg.GetMessage("todo.cleared", count), zap.Int64("count", count))
	uc.publish(ctx, model.TodoCleared, nil, count)
	return count, nil
}

func (uc *todoUseCase) Report(ctx context.Context) (*model.TodoReport, error) {
	todos, err := uc.gateway.FindAll(ctx)
	if err != nil {
		return nil, internalError(err)
	}

	report := &model.TodoReport{Total: len(todos)}
	for _, todo := range todos {
		if todo.Completed {
			report.Completed++
		}
	}
	report.Pending = report.Total - report.Completed
	return report, nil
}

// publish never fails the caller; delivery problems are only logged.
func (uc *todoUseCase) publish(ctx context.Context, eventType model.TodoEventType, todo *entity.Todo, deletedCount int64) {
	if uc.sender == nil {
		return
	}

	todoID := ""
	if todo != nil {
		todoID = todo.ID
	}

	event := model.TodoEvent{
		ID:           uuid.New().String(),
		Type:         eventType,
		Todo:         todo,
		DeletedCount: deletedCount,
		OccurredAt:   entity.Timestamp(time.Now()),
	}

	if err := uc.sender.SendMessage(ctx, uc.destination, event); err != nil {
		log.Error(msg.GetMessage("events.failed", eventType, todoID), zap.Error(err))
		return
	}
	log.Debug(msg.GetMessage("events.published", eventType, todoID))
}

func notFoundError() error {
	return model.NewError(model.ErrCodeNotFound, msg.GetMessage("todo.error.not-found"))
}

func internalError(err error) error {
	return model.WrapError(model.ErrCodeInternal, msg.GetMessage("todo.error.internal"), err)
}
