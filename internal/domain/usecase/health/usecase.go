package health

import (
	"context"

	"todo-api/internal/domain/model"
)

type UseCase interface {
	CheckHealth() model.HealthResponse
	CheckComponents(ctx context.Context) model.ComponentsHealthResponse
}
