package health

import (
	"context"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	"todo-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	queueGateway queue.HealthGateway
	now          func() time.Time
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		queueGateway: queueGateway,
		now:          time.Now,
	}
}

// CheckHealth is the liveness answer; it never touches a component.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	return model.HealthResponse{
		Status:    "ok",
		Timestamp: entity.Timestamp(useCase.now()).Format(entity.TimestampLayout),
	}
}

// CheckComponents is DOWN when the store is down or the last event delivery failed.
// An events component that has not published yet (UNKNOWN) does not degrade the result.
func (useCase *healthUseCase) CheckComponents(ctx context.Context) model.ComponentsHealthResponse {
	dbHealth := useCase.dbGateway.Health(ctx)
	queueHealth := useCase.queueGateway.Health(ctx)

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || queueHealth.Status == model.StatusDown {
		overallStatus = model.StatusDown
	}

	return model.ComponentsHealthResponse{
		Status:  overallStatus,
		Storage: dbHealth,
		Events:  queueHealth,
	}
}
